package catalog

// Categories is the fixed set of store departments. The storefront
// renders them in this order and products must belong to one of them.
var Categories = []string{
	"Аксессуары и дополнения",
	"Зимние виды спорта",
	"Водные виды спорта",
	"Велоспорт",
	"Единоборства и бокс",
	"Спортивный инвентарь",
	"Тренажеры и фитнес",
	"Одежда и обувь",
}

// IsValidCategory reports whether the label is a known department
func IsValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
