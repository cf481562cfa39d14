package repositories

// LastPage calcula a última página de uma listagem.
// Nunca menor que 1: lista vazia ainda tem uma página (vazia).
func LastPage(total int64, perPage int) int {
	if perPage < 1 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		return 1
	}
	return last
}
