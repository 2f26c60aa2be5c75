package service

import (
	"context"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductService struct {
	products ProductRepository
	history  StockHistoryRepository
	logger   *zap.Logger
}

func NewProductService(products ProductRepository, history StockHistoryRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, history: history, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	if req.Stock < 0 {
		return nil, ruleErr("El stock no puede ser negativo")
	}

	category := req.Category
	if category == "" {
		category = "Model Kits"
	}

	product := &model.Product{
		Name:           req.Name,
		Series:         req.Series,
		Scale:          req.Scale,
		Price:          req.Price,
		OldPrice:       req.OldPrice,
		Description:    req.Description,
		Images:         req.Images,
		Specifications: req.Specifications,
		Stock:          req.Stock,
		IsNewProduct:   req.IsNewProduct,
		DiscountText:   req.DiscountText,
		Category:       category,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ruleErr("Id de producto inválido")
	}
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) GetPage(ctx context.Context, page, limit int) (*dto.ProductListResponse, error) {
	items, total, err := s.products.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return &dto.ProductListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
		Limit: limit,
	}, nil
}

func (s *ProductService) Update(ctx context.Context, productID string, req dto.ProductRequest) (*model.Product, error) {
	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if req.Stock < 0 {
		return nil, ruleErr("El stock no puede ser negativo")
	}

	product.Name = req.Name
	product.Series = req.Series
	product.Scale = req.Scale
	product.Price = req.Price
	product.OldPrice = req.OldPrice
	product.Description = req.Description
	product.Images = req.Images
	product.Specifications = req.Specifications
	product.Stock = req.Stock
	product.IsNewProduct = req.IsNewProduct
	product.DiscountText = req.DiscountText
	if req.Category != "" {
		product.Category = req.Category
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, productID string) error {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ruleErr("Id de producto inválido")
	}
	return s.products.Delete(ctx, id)
}

// SetStock fija el stock a mano y deja el ajuste asentado en el historial,
// con el admin que lo hizo.
func (s *ProductService) SetStock(ctx context.Context, actor model.Principal, productID string, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, ruleErr("El stock no puede ser negativo")
	}

	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	delta := stock - product.Stock
	product.Stock = stock
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	h := &model.StockHistory{
		Product:  product.ID,
		Type:     model.StockAdjustment,
		Quantity: delta,
		Reason:   "Ajuste manual de stock",
	}
	if adminID, err := primitive.ObjectIDFromHex(actor.ID); err == nil {
		h.PerformedBy = &adminID
	}
	if err := s.history.Create(ctx, h); err != nil {
		s.logger.Error("no se pudo registrar el ajuste de stock",
			zap.String("product_id", product.ID.Hex()),
			zap.Error(err))
	}

	return product, nil
}

// StockHistory devuelve los movimientos de stock de un producto, del más
// reciente al más viejo.
func (s *ProductService) StockHistory(ctx context.Context, productID string) ([]*model.StockHistory, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ruleErr("Id de producto inválido")
	}
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.history.FindByProduct(ctx, id)
}
