package service

import (
	"toy-store-backend/internal/model"
)

// NextDeliveryStatus valida la transición de estado de entrega y devuelve el
// estado resultante. Es una función pura: no toca la orden ni la base.
//
// Reglas:
//  1. A la cadena de devolución solo se entra desde "delivered".
//  2. Dentro de una misma cadena solo se avanza (índice nuevo >= actual).
//  3. Llegar a "delivered" lo marca el caller (isDelivered/deliveredAt).
//  4. Cualquier otro valor se rechaza.
func NextDeliveryStatus(current, requested model.DeliveryStatus) (model.DeliveryStatus, error) {
	if current == "" {
		current = model.StatusPending
	}

	// Entrada a la cadena de devolución
	if requested.InReturnChain() && current == model.StatusDelivered {
		return requested, nil
	}

	if current.InReturnChain() && requested.InReturnChain() {
		if requested.ReturnIndex() >= current.ReturnIndex() {
			return requested, nil
		}
		return "", ruleErr(
			"No se puede volver a un estado anterior. Estado actual: %s, estado solicitado: %s",
			current.Label(), requested.Label(),
		)
	}

	if requested.InNormalChain() {
		// Una orden en devolución no puede volver a la cadena normal.
		if current.InReturnChain() {
			return "", ruleErr(
				"No se puede volver a un estado anterior. Estado actual: %s, estado solicitado: %s",
				current.Label(), requested.Label(),
			)
		}
		if requested.NormalIndex() >= current.NormalIndex() {
			return requested, nil
		}
		if current == model.StatusDelivered {
			return "", ruleErr("No se puede volver a un estado previo a la entrega")
		}
		return "", ruleErr(
			"No se puede volver a un estado anterior. Estado actual: %s, estado solicitado: %s",
			current.Label(), requested.Label(),
		)
	}

	return "", ruleErr("Estado de entrega no válido: %s", string(requested))
}
