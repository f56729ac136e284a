package store

import (
	"github.com/shopspring/decimal"

	"github.com/velleta/heritage/app/models"
)

// orderDoc is the wire shape of an order. It exists so date strings get
// normalized on ingestion instead of leaking layout quirks into the
// domain model.
type orderDoc struct {
	ID           string               `json:"id"`
	OrderNo      string               `json:"orderNo"`
	Date         Date                 `json:"date"`
	CustomerName string               `json:"customerName"`
	Address      string               `json:"address"`
	PhoneNo      string               `json:"phoneNo"`
	Agent        string               `json:"agent"`
	Transport    string               `json:"transport"`
	PaymentTerms string               `json:"paymentTerms"`
	Remark       string               `json:"remark"`
	OrderDetails []models.OrderDetail `json:"orderDetails"`
	TotalAmount  decimal.Decimal      `json:"totalAmount"`
}

func (doc orderDoc) toModel() models.Order {
	return models.Order{
		ID:           doc.ID,
		OrderNo:      doc.OrderNo,
		Date:         doc.Date.Time,
		CustomerName: doc.CustomerName,
		Address:      doc.Address,
		PhoneNo:      doc.PhoneNo,
		Agent:        doc.Agent,
		Transport:    doc.Transport,
		PaymentTerms: doc.PaymentTerms,
		Remark:       doc.Remark,
		OrderDetails: doc.OrderDetails,
		TotalAmount:  doc.TotalAmount,
	}
}

func toOrderDoc(order models.Order) orderDoc {
	return orderDoc{
		ID:           order.ID,
		OrderNo:      order.OrderNo,
		Date:         Date{order.Date},
		CustomerName: order.CustomerName,
		Address:      order.Address,
		PhoneNo:      order.PhoneNo,
		Agent:        order.Agent,
		Transport:    order.Transport,
		PaymentTerms: order.PaymentTerms,
		Remark:       order.Remark,
		OrderDetails: order.OrderDetails,
		TotalAmount:  order.TotalAmount,
	}
}

func toModels(docs []orderDoc) []models.Order {
	orders := make([]models.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.toModel()
	}
	return orders
}
