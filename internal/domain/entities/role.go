package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Property permissions
	PermissionPropertyRead   Permission = "properties.read"
	PermissionPropertyWrite  Permission = "properties.write"
	PermissionPropertyDelete Permission = "properties.delete"

	// Image permissions
	PermissionImageWrite Permission = "images.write"

	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPropertyRead,
		PermissionPropertyWrite,
		PermissionPropertyDelete,
		PermissionImageWrite,
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
	},
	RoleAgent: {
		PermissionPropertyRead,
		PermissionPropertyWrite,
		PermissionPropertyDelete,
		PermissionImageWrite,
		PermissionUserRead,
	},
	RoleUser: {
		PermissionPropertyRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
