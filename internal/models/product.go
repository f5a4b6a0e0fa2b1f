package models

import "time"

type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Subcategory string    `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Size        string    `json:"size,omitempty" bson:"size,omitempty"`
	Servings    string    `json:"servings,omitempty" bson:"servings,omitempty"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Size        string  `json:"size"`
	Servings    string  `json:"servings"`
	ImageURL    string  `json:"image_url"`
	Featured    bool    `json:"featured"`
}
