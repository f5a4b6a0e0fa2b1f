package models

// SettingsID keys the single live settings document. The collection is
// intentionally constrained to hold exactly one record.
const SettingsID = "app_settings"

type StoreSettings struct {
	ID                string  `json:"id" bson:"id"`
	DeliveryFee       float64 `json:"delivery_fee" bson:"delivery_fee"`
	PixKey            string  `json:"pix_key" bson:"pix_key"`
	AvailableMassas   string  `json:"available_massas" bson:"available_massas"`
	AvailableRecheios string  `json:"available_recheios" bson:"available_recheios"`
	ContactPhone      string  `json:"contact_phone" bson:"contact_phone"`
}

// DefaultSettings is what a read against an empty store creates and returns.
func DefaultSettings() *StoreSettings {
	return &StoreSettings{
		ID:                SettingsID,
		DeliveryFee:       5.0,
		PixKey:            "chave@pix.com",
		AvailableMassas:   "Baunilha, Chocolate, Cenoura",
		AvailableRecheios: "Brigadeiro, Ninho, Doce de Leite",
		ContactPhone:      "(00) 00000-0000",
	}
}
