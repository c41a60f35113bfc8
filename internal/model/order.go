package model

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentWallet PaymentMethod = "Wallet"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
)

// CartItem позиция корзины; ID присваивается при добавлении
type CartItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

// CartTotal сумма корзины
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// Order заказ магазина, создаётся из снимка корзины при оформлении
type Order struct {
	ID             string        `json:"id"`
	Date           string        `json:"date"`
	ParentName     string        `json:"parentName"`
	Phone          string        `json:"phone"`
	StudentDetails string        `json:"studentDetails"`
	Items          []CartItem    `json:"items"`
	Total          float64       `json:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Status         OrderStatus   `json:"status"`
}

// Product позиция каталога (магазин формы или меню столовой)
type Product struct {
	ID       string  `json:"id"`
	Category string  `json:"category,omitempty"`
	NameEn   string  `json:"name_en"`
	NameAr   string  `json:"name_ar"`
	DescEn   string  `json:"desc_en,omitempty"`
	DescAr   string  `json:"desc_ar,omitempty"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}
