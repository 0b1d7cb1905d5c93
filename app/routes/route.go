package routes

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mwidyarto/go-commerce-api/app/handlers"
	"github.com/mwidyarto/go-commerce-api/app/middlewares"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

func NewRouter(db *gorm.DB, log *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLoggingMiddleware(log))

	categoryRepo := repositories.NewCategoryRepository(db, log)
	productRepo := repositories.NewProductRepository(db, log)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo, log)
	productHandler := handlers.NewProductHandler(productRepo, log)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/slug/{slug}", categoryHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.GetByID).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	api.HandleFunc("/categories/{id}/products", productHandler.ListByCategory).Methods("GET")
	api.HandleFunc("/products", productHandler.Create).Methods("POST")

	return router
}
