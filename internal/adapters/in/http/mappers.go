package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/generated/servers"
)

// Prices are numeric(10,2) in storage and are rendered the same way.
const priceScale = 2

func toOrder(o *order.Order) servers.Order {
	items := o.Items()
	products := make([]servers.OrderItem, len(items))
	for i, item := range items {
		products[i] = servers.OrderItem{
			ProductId: item.ProductID().Int64(),
			Quantity:  item.Quantity(),
		}
	}

	return servers.Order{
		Id:          o.ID().Int64(),
		UserId:      o.UserID().Int64(),
		Status:      o.Status().String(),
		Description: o.Description(),
		CreatedAt:   o.CreatedAt(),
		Products:    products,
	}
}

func toOrderListItem(o queries.ListUserOrdersQueryResponse) servers.OrderListItem {
	products := make([]servers.ListedProduct, len(o.Products))
	for i, p := range o.Products {
		products[i] = servers.ListedProduct{
			Quantity: p.Quantity,
			Name:     p.Name,
			Price:    p.Price.StringFixed(priceScale),
			Category: p.Category,
			Url:      p.URL,
		}
	}

	return servers.OrderListItem{
		Id: o.ID,
		User: servers.OrderOwner{
			Id:    o.User.ID,
			Name:  o.User.Name,
			Email: o.User.Email,
		},
		Products:    products,
		Status:      o.Status,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

func toUser(u *user.User) servers.User {
	return servers.User{
		Id:    u.ID().Int64(),
		Name:  u.Name(),
		Email: u.Email(),
		Admin: u.IsAdmin(),
	}
}
