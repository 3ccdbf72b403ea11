package models

// StoreSettings is the singleton shop profile printed on receipts. It is
// created lazily with defaults the first time it is read.
type StoreSettings struct {
	StoreName    string `bson:"store_name" json:"storeName"`
	Address      string `bson:"address" json:"address"`
	Phone        string `bson:"phone" json:"phone"`
	ReceiptNotes string `bson:"receipt_notes" json:"receiptNotes"`
	LogoURL      string `bson:"logo_url" json:"logoUrl"`
}

// DefaultStoreSettings returns the profile used until the owner fills in
// their own.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		StoreName:    "Toko Printing Anda",
		Address:      "Jl. Contoh No. 123",
		Phone:        "081234567890",
		ReceiptNotes: "Terima kasih atas kunjungan Anda!",
		LogoURL:      "",
	}
}
