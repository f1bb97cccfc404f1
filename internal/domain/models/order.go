package models

// SalesRef is the nested sales-profile block carried by an order.
type SalesRef struct {
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Branch     string `json:"branch"`
}

// UnitRef is the nested unit block: the vehicle specification the order was
// written for, with the price snapshotted at order time.
type UnitRef struct {
	TypeDocumentID  string `json:"typeDocumentId"`
	TypeName        string `json:"typeName"`
	Category        string `json:"category"`
	Year            int64  `json:"year"`
	ColorDocumentID string `json:"colorDocumentId"`
	ColorName       string `json:"colorName"`
	Price           int64  `json:"price"`
}

// Order is one SPK. Only Finish and Editable are mutable through the API;
// everything else is display data owned by the backend.
type Order struct {
	ID              int64    `json:"id"`
	DocumentID      string   `json:"documentId"`
	OrderNumber     string   `json:"orderNumber"`
	OrderDate       string   `json:"orderDate"`
	CustomerName    string   `json:"customerName"`
	CustomerAddress string   `json:"customerAddress"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerIDCard  string   `json:"customerIdCard"`
	PaymentMethod   string   `json:"paymentMethod"`
	Finish          bool     `json:"finish"`
	Editable        bool     `json:"editable"`
	Sales           SalesRef `json:"sales"`
	Unit            UnitRef  `json:"unit"`
	CreatedAt       string   `json:"createdAt"`
}
