package main

import (
	"flag"

	"eshop/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query builders for the persistence models.
func main() {
	outPath := flag.String("out", "./internal/infra/persistence/query", "output directory")
	flag.Parse()

	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
