package domain

// Product Statuses
const (
	ProductStatusInStock    = "in_stock"
	ProductStatusComingSoon = "coming_soon"
	ProductStatusOutOfStock = "out_of_stock"
)

// Product Types
const (
	ProductTypeProduct = "product"
	ProductTypeBundle  = "bundle"
)

// Order Statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order Types
const (
	OrderTypeRegular      = "regular"
	OrderTypeCustomBundle = "custom_bundle"
)

// Review Moderation Statuses
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// List Exports for API
var ProductStatuses = []string{
	ProductStatusInStock,
	ProductStatusComingSoon,
	ProductStatusOutOfStock,
}

var ProductTypes = []string{
	ProductTypeProduct,
	ProductTypeBundle,
}

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var OrderTypes = []string{
	OrderTypeRegular,
	OrderTypeCustomBundle,
}

var ReviewStatuses = []string{
	ReviewStatusPending,
	ReviewStatusApproved,
	ReviewStatusRejected,
}
