package converter

import (
	"github.com/avGenie/flexihire/internal/app/entity"
	"github.com/avGenie/flexihire/internal/app/model"
)

func ConvertCheckoutRequestToPurchase(request model.CheckoutRequest) entity.PurchaseRequest {
	return entity.PurchaseRequest{
		ListingID:    entity.ListingID(request.ListingID),
		Package:      request.Package,
		Requirements: request.Requirements,
	}
}

func ConvertApplicationRequestToEntity(request model.ApplicationRequest) entity.ApplicationRequest {
	return entity.ApplicationRequest{
		Bid:          request.Bid,
		DeliveryDays: request.DeliveryDays,
		CoverLetter:  request.CoverLetter,
	}
}

func ConvertOrdersToResponse(orders entity.Orders) model.Orders {
	out := make(model.Orders, 0, len(orders))
	for _, order := range orders {
		out = append(out, ConvertOrderToResponse(order))
	}

	return out
}

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	return model.OrderResponse{
		ID:        order.ID.String(),
		Kind:      string(order.Kind),
		BuyerID:   order.BuyerID.String(),
		SellerID:  order.SellerID.String(),
		ListingID: order.ListingID.String(),
		Terms: model.TermsResponse{
			Title:        order.Terms.Title,
			Package:      order.Terms.Package,
			Price:        order.Terms.Price,
			Currency:     order.Terms.Currency,
			DeliveryDays: order.Terms.DeliveryDays,
			Requirements: order.Terms.Requirements,
		},
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		CreatedAt:     formatTime(order.CreatedAt),
		UpdatedAt:     formatTime(order.UpdatedAt),
	}
}

func ConvertCheckoutToResponse(order entity.Order, session entity.CheckoutSession) model.CheckoutResponse {
	return model.CheckoutResponse{
		Order:       ConvertOrderToResponse(order),
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}
}

func ConvertHistoryToResponse(history entity.StatusHistory) model.StatusHistory {
	out := make(model.StatusHistory, 0, len(history))
	for _, record := range history {
		out = append(out, model.StatusRecordResponse{
			From:          string(record.From),
			To:            string(record.To),
			PaymentStatus: string(record.PaymentStatus),
			ActorID:       record.ActorID.String(),
			Reason:        record.Reason,
			At:            formatTime(record.At),
		})
	}

	return out
}
