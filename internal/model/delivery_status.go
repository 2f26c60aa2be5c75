// delivery_status.go
package model

// DeliveryStatus modela las dos cadenas de entrega, ambas solo hacia adelante:
//
//	normal:     pending → preparing → shipping → delivered
//	devolución: returning_pickup → returning_shipping → returned
//
// A la cadena de devolución solo se entra desde "delivered".
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusPreparing DeliveryStatus = "preparing"
	StatusShipping  DeliveryStatus = "shipping"
	StatusDelivered DeliveryStatus = "delivered"

	StatusReturningPickup   DeliveryStatus = "returning_pickup"
	StatusReturningShipping DeliveryStatus = "returning_shipping"
	StatusReturned          DeliveryStatus = "returned"
)

var NormalChain = []DeliveryStatus{StatusPending, StatusPreparing, StatusShipping, StatusDelivered}

var ReturnChain = []DeliveryStatus{StatusReturningPickup, StatusReturningShipping, StatusReturned}

// indexIn devuelve la posición dentro de la cadena, o -1 si no pertenece.
func (s DeliveryStatus) indexIn(chain []DeliveryStatus) int {
	for i, v := range chain {
		if v == s {
			return i
		}
	}
	return -1
}

func (s DeliveryStatus) NormalIndex() int { return s.indexIn(NormalChain) }

func (s DeliveryStatus) ReturnIndex() int { return s.indexIn(ReturnChain) }

func (s DeliveryStatus) InNormalChain() bool { return s.NormalIndex() >= 0 }

func (s DeliveryStatus) InReturnChain() bool { return s.ReturnIndex() >= 0 }

func (s DeliveryStatus) IsValid() bool { return s.InNormalChain() || s.InReturnChain() }

var statusLabels = map[DeliveryStatus]string{
	StatusPending:           "Pendiente",
	StatusPreparing:         "En Preparación",
	StatusShipping:          "En Camino",
	StatusDelivered:         "Entregada",
	StatusReturningPickup:   "Retiro de Devolución",
	StatusReturningShipping: "Devolución en Camino",
	StatusReturned:          "Devuelta",
}

// Label devuelve el nombre legible del estado para los mensajes al usuario.
func (s DeliveryStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
