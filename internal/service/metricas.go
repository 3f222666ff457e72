package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// webhookEventosTotal conta as entregas de webhook por provedor e
// resultado. Os webhooks são invisíveis para o usuário final; sem essa
// métrica, falha de reconciliação só aparece no dashboard do provedor.
var webhookEventosTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_eventos_total",
		Help: "Número total de entregas de webhook processadas, por provedor e resultado.",
	},
	[]string{"provider", "resultado"},
)
