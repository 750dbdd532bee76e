package main

import (
	"log"

	"foodie-express/config"
	httpapi "foodie-express/internal/api/http"
	"foodie-express/internal/service"
	"foodie-express/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	store := storage.NewPostgresStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	cache := storage.NewRedisCatalogCache(rdb, config.CatalogCacheTTL())

	writer := config.NewKafkaWriter(config.OrderEventsTopic())
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	catalogSvc := service.NewCatalogService(store, cache)
	menuSvc := service.NewMenuService(store)
	cartSvc := service.NewCartService(store, store)
	orderSvc := service.NewOrderService(store, store, cartSvc, publisher,
		service.DefaultQRGenerator{BaseURL: config.BaseURL()})
	profileSvc := service.NewProfileService(store, store)

	handler := httpapi.NewHandler(catalogSvc, menuSvc, cartSvc, orderSvc, profileSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(config.HTTPAddr(), router)
}
