package postgres

import (
	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.OrderRepository = (*OrderRepository)(nil)

// OrderRepository struct - Secondary/Driven adapter storing orders in PostgreSQL
type OrderRepository struct {
	dbGorm *gorm.DB
}

// NewOrderRepository func - Creates new PostgreSQL order repository
func NewOrderRepository(dbGorm *gorm.DB) *OrderRepository {
	return &OrderRepository{
		dbGorm: dbGorm,
	}
}

// CreateOrder func - Stores a submitted order with its line items serialized as JSON
func (p *OrderRepository) CreateOrder(request domain.SubmitOrderRequest) (*domain.OrderResponse, error) {
	payload, err := domain.EncodeLineItems(request.Items)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	order := domain.Order{
		UserID:  &request.UserID,
		Name:    &request.Name,
		Orders:  &payload,
		Address: &request.Address,
		Phone:   &request.Phone,
		Total:   &request.Total,
	}

	tx := p.dbGorm.Begin()
	defer func() {
		tx.Rollback()
	}()
	if err := tx.Create(&order).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	response := toOrderResponse(order, request.Items)
	return &response, nil
}

// GetOrders func - Retrieves a user's orders, newest first
func (p *OrderRepository) GetOrders(userID string) ([]domain.OrderResponse, error) {
	var orders []domain.Order
	if err := p.dbGorm.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items := []domain.LineItem{}
		if order.Orders != nil {
			decoded, err := domain.DecodeLineItems(*order.Orders)
			if err != nil {
				// History stays readable when one row holds bad JSON
				logrus.Warnf("Order %v has unreadable line items: %v", order.ID, err)
			} else {
				items = decoded
			}
		}
		result = append(result, toOrderResponse(order, items))
	}
	return result, nil
}

func toOrderResponse(order domain.Order, items []domain.LineItem) domain.OrderResponse {
	return domain.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		Address:     order.Address,
		Phone:       order.Phone,
		Total:       order.Total,
		CreatedTime: order.CreatedAt,
	}
}
