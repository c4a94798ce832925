package converter

import (
	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/avGenie/go-order-admin/internal/app/model"
)

func ConvertOrderStatsToResponse(stats entity.OrderStats) model.OrderStatsResponse {
	byStatus := make([]model.StatusStatResponse, 0, len(stats.ByStatus))
	for _, stat := range stats.ByStatus {
		byStatus = append(byStatus, model.StatusStatResponse{
			Status:      string(stat.Status),
			Count:       stat.Count,
			TotalAmount: stat.TotalAmount,
		})
	}

	topCustomers := make([]model.CustomerStatResponse, 0, len(stats.TopCustomers))
	for _, stat := range stats.TopCustomers {
		topCustomers = append(topCustomers, model.CustomerStatResponse{
			CustomerID: stat.CustomerID.String(),
			Name:       stat.Name,
			Email:      stat.Email,
			Phone:      stat.Phone,
			OrderCount: stat.OrderCount,
			TotalSpent: stat.TotalSpent,
		})
	}

	return model.OrderStatsResponse{
		ByStatus:     byStatus,
		TopCustomers: topCustomers,
	}
}
