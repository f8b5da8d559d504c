package handlers

import (
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

var (
	productRepo repo.ProductRepository
	logger      = zap.NewNop()
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetLogger(l *zap.Logger) {
	logger = l
}
