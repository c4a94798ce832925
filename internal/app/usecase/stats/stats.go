package stats

import (
	"container/heap"
	"context"
	"fmt"
	"sort"

	"github.com/avGenie/go-order-admin/internal/app/entity"
	"github.com/shopspring/decimal"
)

const TopCustomersLimit = 5

type OrdersReader interface {
	GetOrders(ctx context.Context, ownerID entity.UserID, filter entity.OrderFilter) (entity.Orders, error)
	GetCustomersByIDs(ctx context.Context, ownerID entity.UserID, ids []entity.CustomerID) (entity.Customers, error)
}

type Reporter struct {
	storage OrdersReader
}

func New(storage OrdersReader) *Reporter {
	return &Reporter{
		storage: storage,
	}
}

// Report aggregates stored order totals per status and ranks the owner's
// customers by total spent.
func (r *Reporter) Report(ctx context.Context, ownerID entity.UserID) (entity.OrderStats, error) {
	orders, err := r.storage.GetOrders(ctx, ownerID, entity.OrderFilter{})
	if err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while getting orders for stats: %w", err)
	}

	topCustomers, err := r.joinCustomers(ctx, ownerID, TopCustomers(orders, TopCustomersLimit))
	if err != nil {
		return entity.OrderStats{}, err
	}

	return entity.OrderStats{
		ByStatus:     ByStatus(orders),
		TopCustomers: topCustomers,
	}, nil
}

// ByStatus groups orders by status. Buckets are sorted by status name.
func ByStatus(orders entity.Orders) []entity.StatusStat {
	buckets := make(map[entity.OrderStatus]*entity.StatusStat)
	for _, order := range orders {
		bucket, ok := buckets[order.Status]
		if !ok {
			bucket = &entity.StatusStat{
				Status:      order.Status,
				TotalAmount: decimal.Zero,
			}
			buckets[order.Status] = bucket
		}

		bucket.Count++
		bucket.TotalAmount = bucket.TotalAmount.Add(order.TotalAmount)
	}

	result := make([]entity.StatusStat, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Status < result[j].Status
	})

	return result
}

// TopCustomers returns at most limit customers sorted descending by total spent.
// Only the customer id, name snapshot and totals are filled.
func TopCustomers(orders entity.Orders, limit int) []entity.CustomerStat {
	if limit <= 0 {
		return []entity.CustomerStat{}
	}

	totals := make(map[entity.CustomerID]*entity.CustomerStat)
	for _, order := range orders {
		stat, ok := totals[order.CustomerID]
		if !ok {
			stat = &entity.CustomerStat{
				CustomerID: order.CustomerID,
				Name:       order.CustomerName,
				TotalSpent: decimal.Zero,
			}
			totals[order.CustomerID] = stat
		}

		stat.OrderCount++
		stat.TotalSpent = stat.TotalSpent.Add(order.TotalAmount)
	}

	top := make(customerHeap, 0, limit+1)
	for _, stat := range totals {
		if top.Len() < limit {
			heap.Push(&top, *stat)
			continue
		}

		if ranksHigher(*stat, top[0]) {
			top[0] = *stat
			heap.Fix(&top, 0)
		}
	}

	result := make([]entity.CustomerStat, top.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&top).(entity.CustomerStat)
	}

	return result
}

func (r *Reporter) joinCustomers(ctx context.Context, ownerID entity.UserID, stats []entity.CustomerStat) ([]entity.CustomerStat, error) {
	if len(stats) == 0 {
		return stats, nil
	}

	ids := make([]entity.CustomerID, 0, len(stats))
	for _, stat := range stats {
		ids = append(ids, stat.CustomerID)
	}

	customers, err := r.storage.GetCustomersByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("error while getting top customers: %w", err)
	}

	byID := make(map[entity.CustomerID]entity.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}

	for i := range stats {
		customer, ok := byID[stats[i].CustomerID]
		if !ok {
			continue
		}

		stats[i].Name = customer.Name
		stats[i].Email = customer.Email
		stats[i].Phone = customer.Phone
	}

	return stats, nil
}

// ranksHigher orders by total spent, then order count, then customer id so the
// ranking is deterministic.
func ranksHigher(a, b entity.CustomerStat) bool {
	if cmp := a.TotalSpent.Cmp(b.TotalSpent); cmp != 0 {
		return cmp > 0
	}
	if a.OrderCount != b.OrderCount {
		return a.OrderCount > b.OrderCount
	}

	return a.CustomerID < b.CustomerID
}

// customerHeap is a min-heap: the lowest ranked customer sits at the root.
type customerHeap []entity.CustomerStat

func (h customerHeap) Len() int           { return len(h) }
func (h customerHeap) Less(i, j int) bool { return ranksHigher(h[j], h[i]) }
func (h customerHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *customerHeap) Push(x any) {
	*h = append(*h, x.(entity.CustomerStat))
}

func (h *customerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
