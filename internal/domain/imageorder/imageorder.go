// Package imageorder mantém os invariantes de ordenação das imagens de um
// imóvel: no máximo uma imagem primária e sort_order consistente.
//
// O pacote é puro: recebe um snapshot das imagens de UM imóvel e devolve as
// mutações de linha necessárias. O repository é responsável por carregar o
// snapshot e aplicar as mutações dentro de uma transação.
package imageorder

import (
	"sort"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
)

// Update descreve uma mutação a aplicar em uma única imagem.
// Campos nil não são alterados.
type Update struct {
	ImageID   uint
	IsPrimary *bool
	SortOrder *int
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// PlanSetPrimary limpa is_primary de todas as outras imagens do imóvel e
// marca a imagem alvo como primária. Idempotente: se o alvo já é a única
// primária, nenhuma mutação é emitida.
func PlanSetPrimary(images []entities.PropertyImage, targetID uint) []Update {
	updates := []Update{}

	found := false
	for _, img := range images {
		switch {
		case img.ID == targetID:
			found = true
			if !img.IsPrimary {
				updates = append(updates, Update{ImageID: img.ID, IsPrimary: boolPtr(true)})
			}
		case img.IsPrimary:
			updates = append(updates, Update{ImageID: img.ID, IsPrimary: boolPtr(false)})
		}
	}

	if !found {
		return nil
	}

	return updates
}

// PlanRemovePrimary desmarca is_primary apenas na imagem alvo.
// Nenhuma outra imagem é promovida: ausência de primária é um estado válido.
func PlanRemovePrimary(images []entities.PropertyImage, targetID uint) []Update {
	for _, img := range images {
		if img.ID == targetID {
			if !img.IsPrimary {
				return []Update{}
			}
			return []Update{{ImageID: img.ID, IsPrimary: boolPtr(false)}}
		}
	}
	return nil
}

// PlanMoveUp troca o sort_order do alvo com o da imagem vizinha de maior
// sort_order estritamente menor. No-op quando o alvo já é a primeira.
func PlanMoveUp(images []entities.PropertyImage, targetID uint) []Update {
	target := find(images, targetID)
	if target == nil {
		return nil
	}

	var prev *entities.PropertyImage
	for i := range images {
		img := &images[i]
		if img.ID == targetID || img.SortOrder >= target.SortOrder {
			continue
		}
		if prev == nil || img.SortOrder > prev.SortOrder {
			prev = img
		}
	}

	if prev == nil {
		return []Update{}
	}

	return swap(target, prev)
}

// PlanMoveDown é simétrico a PlanMoveUp: troca com a vizinha de menor
// sort_order estritamente maior. No-op quando o alvo já é a última.
func PlanMoveDown(images []entities.PropertyImage, targetID uint) []Update {
	target := find(images, targetID)
	if target == nil {
		return nil
	}

	var next *entities.PropertyImage
	for i := range images {
		img := &images[i]
		if img.ID == targetID || img.SortOrder <= target.SortOrder {
			continue
		}
		if next == nil || img.SortOrder < next.SortOrder {
			next = img
		}
	}

	if next == nil {
		return []Update{}
	}

	return swap(target, next)
}

// NextSortOrder retorna o próximo sort_order livre para anexar uma imagem
// ao final da sequência do imóvel.
func NextSortOrder(images []entities.PropertyImage) int {
	max := 0
	for _, img := range images {
		if img.SortOrder > max {
			max = img.SortOrder
		}
	}
	return max + 1
}

// HasPrimary verifica se alguma imagem do snapshot é primária
func HasPrimary(images []entities.PropertyImage) bool {
	for _, img := range images {
		if img.IsPrimary {
			return true
		}
	}
	return false
}

// SortForDisplay ordena um snapshot na ordem de exibição:
// primária primeiro, depois sort_order crescente, empates por id.
func SortForDisplay(images []entities.PropertyImage) {
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].IsPrimary != images[j].IsPrimary {
			return images[i].IsPrimary
		}
		if images[i].SortOrder != images[j].SortOrder {
			return images[i].SortOrder < images[j].SortOrder
		}
		return images[i].ID < images[j].ID
	})
}

// Apply aplica mutações a um snapshot em memória. Usado em testes e para
// devolver ao caller o estado resultante sem reler o banco.
func Apply(images []entities.PropertyImage, updates []Update) {
	for _, u := range updates {
		for i := range images {
			if images[i].ID != u.ImageID {
				continue
			}
			if u.IsPrimary != nil {
				images[i].IsPrimary = *u.IsPrimary
			}
			if u.SortOrder != nil {
				images[i].SortOrder = *u.SortOrder
			}
		}
	}
}

func find(images []entities.PropertyImage, id uint) *entities.PropertyImage {
	for i := range images {
		if images[i].ID == id {
			return &images[i]
		}
	}
	return nil
}

func swap(a, b *entities.PropertyImage) []Update {
	return []Update{
		{ImageID: a.ID, SortOrder: intPtr(b.SortOrder)},
		{ImageID: b.ID, SortOrder: intPtr(a.SortOrder)},
	}
}
