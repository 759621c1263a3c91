package model

import "go.mongodb.org/mongo-driver/bson"

// CategoryCount is one row of the per-category task grouping.
type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// TypeEarnings is one row of the per-task-type earnings grouping.
type TypeEarnings struct {
	Type       string  `bson:"type" json:"type"`
	Count      int64   `bson:"count" json:"count"`
	TotalValue float64 `bson:"totalValue" json:"totalValue"`
	Commission float64 `bson:"commission" json:"commission"`
}

// UserBreakdown summarizes the user population.
type UserBreakdown struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}

// TaskBreakdown summarizes the task population.
type TaskBreakdown struct {
	Total      int64           `json:"total"`
	Buy        int64           `json:"buy"`
	Sell       int64           `json:"sell"`
	Recent     int64           `json:"recent"`
	ByCategory []CategoryCount `json:"byCategory"`
}

// ValueBreakdown carries monetary totals.
type ValueBreakdown struct {
	TotalTaskValue float64 `json:"totalTaskValue"`
}

// AnalyticsReport is the full analytics response.
type AnalyticsReport struct {
	Users UserBreakdown  `json:"users"`
	Tasks TaskBreakdown  `json:"tasks"`
	Value ValueBreakdown `json:"value"`
}

// EarningsReport is the commission/earnings response. TotalTaskValue is a
// linear-scan sum; ProductsByType recomputes the same totals through a
// grouped aggregate as a cross-check.
type EarningsReport struct {
	TotalTaskValue      float64        `json:"totalTaskValue"`
	EstimatedCommission float64        `json:"estimatedCommission"`
	CommissionRate      float64        `json:"commissionRate"`
	NetEarnings         float64        `json:"netEarnings"`
	ProductsByType      []TypeEarnings `json:"productsByType"`
	TotalProducts       int            `json:"totalProducts"`
}

// CollectionReport describes one collection: count, a best-effort schema
// inferred from a single sample document, and the bounded sample itself.
type CollectionReport struct {
	Collection string            `json:"collection"`
	Count      int64             `json:"count"`
	Schema     map[string]string `json:"schema"`
	Sample     []bson.M          `json:"sample"`
}
