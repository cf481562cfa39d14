package postgres

// PropertyModel é o model GORM para imóveis
type PropertyModel struct {
	ID           uint     `gorm:"primaryKey;autoIncrement"`
	Title        string   `gorm:"type:varchar(255);not null"`
	Description  *string  `gorm:"type:text"`
	PropertyType string   `gorm:"type:varchar(20);not null;index:idx_properties_type_status,priority:1"`
	Status       string   `gorm:"type:varchar(20);not null;default:'available';index:idx_properties_type_status,priority:2"`
	Price        float64  `gorm:"type:decimal(15,2);not null;index:idx_properties_price_area,priority:1"`
	Area         float64  `gorm:"type:decimal(10,2);not null;index:idx_properties_price_area,priority:2"`
	Bedrooms     int      `gorm:"not null;default:0"`
	Bathrooms    int      `gorm:"not null;default:0"`
	Floors       int      `gorm:"not null;default:1"`
	Address      string   `gorm:"type:varchar(500);not null"`
	City         string   `gorm:"type:varchar(100);not null;index:idx_properties_city_district,priority:1"`
	District     string   `gorm:"type:varchar(100);not null;index:idx_properties_city_district,priority:2"`
	PostalCode   *string  `gorm:"type:varchar(20)"`
	Latitude     *float64 `gorm:"type:decimal(10,8)"`
	Longitude    *float64 `gorm:"type:decimal(11,8)"`
	YearBuilt    *int
	Features     *string `gorm:"type:jsonb"` // lista ordenada de strings (JSON)
	ContactName  string  `gorm:"type:varchar(255);not null"`
	ContactPhone string  `gorm:"type:varchar(20);not null"`
	ContactEmail *string `gorm:"type:varchar(255)"`
	CreatedBy    *uint   `gorm:"index"`
	UpdatedBy    *uint
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete

	Images []PropertyImageModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

// PropertyImageModel é o model GORM para imagens de imóveis
type PropertyImageModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	PropertyID uint   `gorm:"not null;index;index:idx_property_images_primary,priority:1;index:idx_property_images_sort,priority:1"`
	ImagePath  string `gorm:"type:varchar(500);not null"`
	ImageName  string `gorm:"type:varchar(255);not null"`
	IsPrimary  bool   `gorm:"not null;default:false;index:idx_property_images_primary,priority:2"`
	SortOrder  int    `gorm:"not null;default:0;index:idx_property_images_sort,priority:2"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
	UpdatedAt  int64  `gorm:"autoUpdateTime"`
}

func (PropertyImageModel) TableName() string {
	return "property_images"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// AccessTokenModel é o model GORM para tokens de acesso (suporte a revogação)
type AccessTokenModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"` // jti do JWT
	UserID    uint   `gorm:"not null;index"`
	ExpiresAt int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (AccessTokenModel) TableName() string {
	return "access_tokens"
}
