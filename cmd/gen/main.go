package main

import (
	"beacon/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MemberModel{},
		model.DeviceTokenModel{},
		model.NotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
