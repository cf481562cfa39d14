package imageorder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/realestate-backend/internal/domain/entities"
	"github.com/rafabene/realestate-backend/internal/domain/imageorder"
)

// snapshot monta um conjunto de imagens de um mesmo imóvel.
// primaryID == 0 significa nenhuma primária.
func snapshot(primaryID uint, sortOrders map[uint]int) []entities.PropertyImage {
	ids := make([]uint, 0, len(sortOrders))
	for id := range sortOrders {
		ids = append(ids, id)
	}
	// ordem determinística para os testes
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}

	images := make([]entities.PropertyImage, 0, len(ids))
	for _, id := range ids {
		images = append(images, entities.PropertyImage{
			ID:         id,
			PropertyID: 1,
			IsPrimary:  id == primaryID,
			SortOrder:  sortOrders[id],
		})
	}
	return images
}

func primaryIDs(images []entities.PropertyImage) []uint {
	var ids []uint
	for _, img := range images {
		if img.IsPrimary {
			ids = append(ids, img.ID)
		}
	}
	return ids
}

var _ = Describe("PlanSetPrimary", func() {
	It("marca o alvo e desmarca a primária anterior", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2, 3: 3})

		plan := imageorder.PlanSetPrimary(images, 3)
		imageorder.Apply(images, plan)

		Expect(primaryIDs(images)).To(Equal([]uint{3}))
	})

	It("deixa exatamente uma primária mesmo partindo de estado corrompido", func() {
		// Duas primárias ao mesmo tempo nunca deveria acontecer, mas o
		// plano precisa convergir para o invariante de qualquer forma.
		images := snapshot(0, map[uint]int{1: 1, 2: 2, 3: 3})
		images[0].IsPrimary = true
		images[1].IsPrimary = true

		plan := imageorder.PlanSetPrimary(images, 3)
		imageorder.Apply(images, plan)

		Expect(primaryIDs(images)).To(Equal([]uint{3}))
	})

	It("é idempotente quando o alvo já é a única primária", func() {
		images := snapshot(2, map[uint]int{1: 1, 2: 2, 3: 3})

		plan := imageorder.PlanSetPrimary(images, 2)

		Expect(plan).To(BeEmpty())
		Expect(plan).NotTo(BeNil())
	})

	It("funciona quando nenhuma imagem era primária", func() {
		images := snapshot(0, map[uint]int{1: 1, 2: 2})

		plan := imageorder.PlanSetPrimary(images, 1)
		imageorder.Apply(images, plan)

		Expect(primaryIDs(images)).To(Equal([]uint{1}))
	})

	It("retorna nil quando o alvo não pertence ao snapshot", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2})

		Expect(imageorder.PlanSetPrimary(images, 99)).To(BeNil())
	})
})

var _ = Describe("PlanRemovePrimary", func() {
	It("desmarca a primária sem promover outra imagem", func() {
		images := snapshot(2, map[uint]int{1: 1, 2: 2, 3: 3})

		plan := imageorder.PlanRemovePrimary(images, 2)
		imageorder.Apply(images, plan)

		Expect(primaryIDs(images)).To(BeEmpty())
	})

	It("é no-op quando o alvo não é primária", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2})

		plan := imageorder.PlanRemovePrimary(images, 2)

		Expect(plan).To(BeEmpty())
		Expect(plan).NotTo(BeNil())
	})

	It("retorna nil quando o alvo não pertence ao snapshot", func() {
		images := snapshot(1, map[uint]int{1: 1})

		Expect(imageorder.PlanRemovePrimary(images, 99)).To(BeNil())
	})
})

var _ = Describe("PlanMoveUp e PlanMoveDown", func() {
	It("troca o sort_order com a vizinha anterior", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2, 3: 3})

		plan := imageorder.PlanMoveUp(images, 3)
		imageorder.Apply(images, plan)

		Expect(find(images, 2).SortOrder).To(Equal(3))
		Expect(find(images, 3).SortOrder).To(Equal(2))
		Expect(find(images, 1).SortOrder).To(Equal(1))
	})

	It("troca o sort_order com a vizinha seguinte", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2, 3: 3})

		plan := imageorder.PlanMoveDown(images, 1)
		imageorder.Apply(images, plan)

		Expect(find(images, 1).SortOrder).To(Equal(2))
		Expect(find(images, 2).SortOrder).To(Equal(1))
	})

	It("moveUp seguido de moveDown restaura a ordem original", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2, 3: 3})

		imageorder.Apply(images, imageorder.PlanMoveUp(images, 2))
		imageorder.Apply(images, imageorder.PlanMoveDown(images, 2))

		Expect(find(images, 1).SortOrder).To(Equal(1))
		Expect(find(images, 2).SortOrder).To(Equal(2))
		Expect(find(images, 3).SortOrder).To(Equal(3))
	})

	It("é no-op mover para cima a primeira imagem", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2})

		plan := imageorder.PlanMoveUp(images, 1)

		Expect(plan).To(BeEmpty())
		Expect(plan).NotTo(BeNil())
	})

	It("é no-op mover para baixo a última imagem", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 2})

		plan := imageorder.PlanMoveDown(images, 2)

		Expect(plan).To(BeEmpty())
		Expect(plan).NotTo(BeNil())
	})

	It("usa a vizinha mais próxima quando o sort_order tem buracos", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 5, 3: 9})

		plan := imageorder.PlanMoveUp(images, 3)
		imageorder.Apply(images, plan)

		Expect(find(images, 2).SortOrder).To(Equal(9))
		Expect(find(images, 3).SortOrder).To(Equal(5))
	})

	It("não altera o flag de primária ao reordenar", func() {
		images := snapshot(2, map[uint]int{1: 1, 2: 2, 3: 3})

		imageorder.Apply(images, imageorder.PlanMoveUp(images, 2))

		Expect(primaryIDs(images)).To(Equal([]uint{2}))
	})

	It("retorna nil quando o alvo não pertence ao snapshot", func() {
		images := snapshot(1, map[uint]int{1: 1})

		Expect(imageorder.PlanMoveUp(images, 99)).To(BeNil())
		Expect(imageorder.PlanMoveDown(images, 99)).To(BeNil())
	})
})

var _ = Describe("NextSortOrder e HasPrimary", func() {
	It("continua a sequência a partir do maior sort_order", func() {
		images := snapshot(1, map[uint]int{1: 1, 2: 7})

		Expect(imageorder.NextSortOrder(images)).To(Equal(8))
	})

	It("começa em 1 para um imóvel sem imagens", func() {
		Expect(imageorder.NextSortOrder(nil)).To(Equal(1))
	})

	It("detecta presença e ausência de primária", func() {
		Expect(imageorder.HasPrimary(snapshot(2, map[uint]int{1: 1, 2: 2}))).To(BeTrue())
		Expect(imageorder.HasPrimary(snapshot(0, map[uint]int{1: 1, 2: 2}))).To(BeFalse())
	})
})

var _ = Describe("SortForDisplay", func() {
	It("coloca a primária antes das demais, depois sort_order crescente", func() {
		images := snapshot(3, map[uint]int{1: 1, 2: 2, 3: 3})

		imageorder.SortForDisplay(images)

		Expect(images[0].ID).To(Equal(uint(3)))
		Expect(images[1].ID).To(Equal(uint(1)))
		Expect(images[2].ID).To(Equal(uint(2)))
	})

	It("desempata sort_order igual pelo id", func() {
		images := snapshot(0, map[uint]int{5: 2, 3: 2, 9: 1})

		imageorder.SortForDisplay(images)

		Expect(images[0].ID).To(Equal(uint(9)))
		Expect(images[1].ID).To(Equal(uint(3)))
		Expect(images[2].ID).To(Equal(uint(5)))
	})
})

var _ = Describe("fluxo completo de uma galeria", func() {
	It("upload, reordenação e troca de primária mantêm os invariantes", func() {
		// Imóvel criado com três imagens: a primeira é a primária.
		images := snapshot(1, map[uint]int{1: 1, 2: 2, 3: 3})

		// A última imagem sobe uma posição.
		imageorder.Apply(images, imageorder.PlanMoveUp(images, 3))
		Expect(find(images, 2).SortOrder).To(Equal(3))
		Expect(find(images, 3).SortOrder).To(Equal(2))

		// A primária muda para a imagem que acabou de subir.
		imageorder.Apply(images, imageorder.PlanSetPrimary(images, 3))
		Expect(primaryIDs(images)).To(Equal([]uint{3}))

		// Na exibição a nova primária vem primeiro, o resto por sort_order.
		imageorder.SortForDisplay(images)
		Expect(images[0].ID).To(Equal(uint(3)))
		Expect(images[1].ID).To(Equal(uint(1)))
		Expect(images[2].ID).To(Equal(uint(2)))

		// Uma quarta imagem entra no fim da sequência sem virar primária.
		Expect(imageorder.NextSortOrder(images)).To(Equal(4))
		Expect(imageorder.HasPrimary(images)).To(BeTrue())
	})
})

func find(images []entities.PropertyImage, id uint) *entities.PropertyImage {
	for i := range images {
		if images[i].ID == id {
			return &images[i]
		}
	}
	return nil
}
