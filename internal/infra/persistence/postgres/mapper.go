package postgres

import (
	"eshop/internal/domain/entity"
	"eshop/internal/infra/persistence/model"

	"github.com/lib/pq"
)

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		IsAdmin:      m.IsAdmin,
		Street:       m.Street,
		Apartment:    m.Apartment,
		Zip:          m.Zip,
		City:         m.City,
		Country:      m.Country,
		CreatedAt:    m.CreatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		IsAdmin:      u.IsAdmin,
		Street:       u.Street,
		Apartment:    u.Apartment,
		Zip:          u.Zip,
		City:         u.City,
		Country:      u.Country,
		CreatedAt:    u.CreatedAt,
	}
}

func toUserSummary(m *model.UserModel) *entity.UserSummary {
	if m == nil {
		return nil
	}

	return &entity.UserSummary{ID: m.ID, Name: m.Name, Email: m.Email}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{ID: m.ID, Name: m.Name, Icon: m.Icon, Color: m.Color}
}

func fromCategoryDomain(c *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	images := []string(m.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		RichDescription: m.RichDescription,
		Image:           m.Image,
		Images:          images,
		Brand:           m.Brand,
		Price:           m.Price,
		CategoryID:      m.CategoryID,
		Category:        toCategoryDomain(m.Category),
		CountInStock:    m.CountInStock,
		Rating:          m.Rating,
		NumReviews:      m.NumReviews,
		IsFeatured:      m.IsFeatured,
		DateCreated:     m.DateCreated,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Image:           p.Image,
		Images:          pq.StringArray(p.Images),
		Brand:           p.Brand,
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		DateCreated:     p.DateCreated,
	}
}

func toOrderItemDomain(m *model.OrderItemModel) *entity.OrderItem {
	if m == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Position:  m.Position,
		Quantity:  m.Quantity,
		ProductID: m.ProductID,
		Product:   toProductDomain(m.Product),
	}
}

func fromOrderItemDomain(i *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:        i.ID,
		OrderID:   i.OrderID,
		Position:  i.Position,
		Quantity:  i.Quantity,
		ProductID: i.ProductID,
	}
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(m.OrderItems))
	for _, itemM := range m.OrderItems {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:               m.ID,
		OrderItems:       items,
		ShippingAddress1: m.ShippingAddress1,
		ShippingAddress2: m.ShippingAddress2,
		City:             m.City,
		Zip:              m.Zip,
		Country:          m.Country,
		Phone:            m.Phone,
		Status:           m.Status,
		TotalPrice:       m.TotalPrice,
		UserID:           m.UserID,
		User:             toUserSummary(m.User),
		DateOrdered:      m.DateOrdered,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:               o.ID,
		ShippingAddress1: o.ShippingAddress1,
		ShippingAddress2: o.ShippingAddress2,
		City:             o.City,
		Zip:              o.Zip,
		Country:          o.Country,
		Phone:            o.Phone,
		Status:           o.Status,
		TotalPrice:       o.TotalPrice,
		UserID:           o.UserID,
		DateOrdered:      o.DateOrdered,
	}
}
