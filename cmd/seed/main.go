// Seeds the product catalog and the default settings directly against the
// store, bypassing the HTTP layer. Destructive: the products collection is
// wiped and rewritten.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cakeshop-api/internal/config"
	"cakeshop-api/internal/db"
	"cakeshop-api/internal/logger"
	"cakeshop-api/internal/models"
)

const (
	imgCake1 = "https://images.unsplash.com/photo-1621868402792-a5c9fa6866a3?crop=entropy&cs=srgb&fm=jpg&q=85"
	imgCake2 = "https://images.unsplash.com/photo-1583067784891-36831dbd4cb4?crop=entropy&cs=srgb&fm=jpg&q=85"
	imgCake3 = "https://images.unsplash.com/photo-1737189409843-c86c2d4770fd?crop=entropy&cs=srgb&fm=jpg&q=85"
	imgCake4 = "https://images.unsplash.com/photo-1721412742313-fbcc3e48f770?crop=entropy&cs=srgb&fm=jpg&q=85"
)

func catalog() []interface{} {
	now := time.Now().UTC()

	products := []models.Product{
		{Name: "Bolo 10cm", Description: "Bolo redondo pequeno, perfeito para 8 pessoas. Escolha 1 massa e 1 recheio. Massas: Tradicional, Baunilha, Chocolate, Coco. Recheios diversos disponíveis.", Price: 100.00, Category: "Bolos Redondos", Size: "10cm", Servings: "8 fatias", ImageURL: imgCake1, Featured: true},
		{Name: "Bolo 15cm", Description: "Bolo redondo médio para 12 pessoas. Escolha 1 massa e 1 recheio. Perfeito para pequenas celebrações.", Price: 140.00, Category: "Bolos Redondos", Size: "15cm", Servings: "12 fatias", ImageURL: imgCake2, Featured: true},
		{Name: "Bolo 20cm", Description: "Bolo redondo grande. Escolha até 2 massas e 2 recheios diferentes! Ideal para festas.", Price: 170.00, Category: "Bolos Redondos", Size: "20cm", Servings: "22 fatias", ImageURL: imgCake3, Featured: false},
		{Name: "Bolo 22cm", Description: "Bolo redondo grande para 25 fatias. Até 2 massas e 2 recheios diferentes.", Price: 190.00, Category: "Bolos Redondos", Size: "22cm", Servings: "25 fatias", ImageURL: imgCake4, Featured: false},
		{Name: "Bolo 25cm", Description: "Bolo redondo grande para 32 fatias. Até 2 massas e 2 recheios diferentes. Perfeito para eventos maiores.", Price: 260.00, Category: "Bolos Redondos", Size: "25cm", Servings: "32 fatias", ImageURL: imgCake4, Featured: true},
		{Name: "Bolo 28cm", Description: "Bolo redondo grande para 35 fatias. Até 2 massas e 2 recheios diferentes.", Price: 280.00, Category: "Bolos Redondos", Size: "28cm", Servings: "35 fatias", ImageURL: imgCake1, Featured: false},
		{Name: "Bolo 30cm", Description: "Bolo redondo grande para 38 fatias. Até 2 massas e 2 recheios diferentes.", Price: 300.00, Category: "Bolos Redondos", Size: "30cm", Servings: "38 fatias", ImageURL: imgCake2, Featured: false},
		{Name: "Bolo 35cm", Description: "Bolo redondo grande para 42 fatias. Até 2 massas e 2 recheios diferentes.", Price: 320.00, Category: "Bolos Redondos", Size: "35cm", Servings: "42 fatias", ImageURL: imgCake3, Featured: false},
		{Name: "Bolo 40cm", Description: "Bolo redondo grande para 52 fatias. Até 2 massas e 2 recheios diferentes. Ideal para grandes eventos.", Price: 340.00, Category: "Bolos Redondos", Size: "40cm", Servings: "52 fatias", ImageURL: imgCake3, Featured: false},
		{Name: "Bolo Retangular 30x20cm", Description: "Bolo retangular para 25 fatias. Ideal para festas e eventos.", Price: 185.00, Category: "Bolos Retangulares", Size: "30x20cm", Servings: "25 fatias", ImageURL: imgCake1, Featured: false},
		{Name: "Bolo Retangular 35x25cm", Description: "Bolo retangular médio para 30 fatias.", Price: 245.00, Category: "Bolos Retangulares", Size: "35x25cm", Servings: "30 fatias", ImageURL: imgCake2, Featured: false},
		{Name: "Bolo Retangular 45x35cm", Description: "Bolo retangular grande para 100 fatias. Perfeito para eventos grandes.", Price: 325.00, Category: "Bolos Retangulares", Size: "45x35cm", Servings: "100 fatias", ImageURL: imgCake3, Featured: false},
		{Name: "Brigadeiro Preto (Caixa)", Description: "Brigadeiros tradicionais. Caixa com 100 unidades.", Price: 140.00, Category: "Doces", Subcategory: "Comuns", ImageURL: imgCake1, Featured: false},
		{Name: "Beijinho (Caixa)", Description: "Beijinhos tradicionais de coco. Caixa com 100 unidades.", Price: 140.00, Category: "Doces", Subcategory: "Comuns", ImageURL: imgCake2, Featured: false},
		{Name: "Morango Coberto (Caixa)", Description: "Morangos cobertos com chocolate. Doce fino. Caixa com 100 unidades.", Price: 160.00, Category: "Doces", Subcategory: "Finos", ImageURL: imgCake3, Featured: false},
		{Name: "Brigadeiro Gourmet (Caixa)", Description: "Brigadeiros gourmet premium. Caixa com 100 unidades.", Price: 180.00, Category: "Doces", Subcategory: "Gourmet", ImageURL: imgCake1, Featured: false},
		{Name: "Tortinha de Morango (Caixa)", Description: "Tortinhas deliciosas de morango. Doce gourmet. Caixa com 100 unidades.", Price: 180.00, Category: "Doces", Subcategory: "Gourmet", ImageURL: imgCake2, Featured: false},
		{Name: "Kit Mesversário", Description: "Kit completo: 1 bolo 10cm + 25 doces + 10 cupcakes + arco decorativo com balões", Price: 199.90, Category: "Kits", ImageURL: imgCake4, Featured: true},
	}

	docs := make([]interface{}, 0, len(products))
	for i := range products {
		products[i].ID = uuid.NewString()
		products[i].CreatedAt = now
		docs = append(docs, products[i])
	}
	return docs
}

func main() {
	cfg := config.LoadConfig()
	log := logger.InitLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, database, err := db.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to the store")
	}
	defer client.Disconnect(ctx)

	products := database.Collection("products")
	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("Could not clear the products collection")
	}

	docs := catalog()
	if _, err := products.InsertMany(ctx, docs); err != nil {
		log.Fatal().Err(err).Msg("Could not insert the product catalog")
	}
	log.Info().Int("count", len(docs)).Msg("Products seeded")

	settings := models.DefaultSettings()
	_, err = database.Collection("settings").UpdateOne(
		ctx,
		bson.M{"id": models.SettingsID},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not upsert default settings")
	}
	log.Info().Msg("Default settings in place")
}
