package valueobjects

import "testing"

func TestNewEmail(t *testing.T) {
	t.Run("aceita e normaliza email válido", func(t *testing.T) {
		email, err := NewEmail("  Agente@Example.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "agente@example.com" {
			t.Errorf("esperava 'agente@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalid := []string{
			"",
			"sem-arroba",
			"@dominio.com",
			"usuario@",
			"usuario@dominio",
			"usuario com espaço@dominio.com",
		}

		for _, value := range invalid {
			if _, err := NewEmail(value); err == nil {
				t.Errorf("esperava erro para '%s', obteve sucesso", value)
			}
		}
	})
}
