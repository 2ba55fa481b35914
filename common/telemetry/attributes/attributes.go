package attributes

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var (
	ExceptionMessageKey = semconv.ExceptionMessageKey
	ExceptionTypeKey    = semconv.ExceptionTypeKey

	AttrDBFilePathKey = attribute.Key("db.file.path")

	AttrAppProductIDKey       = attribute.Key("app.product.id")
	AttrAppProductCategoryKey = attribute.Key("app.product.category")
	AttrAppProductCount       = attribute.Key("app.products.count")
	AttrAppPageKey            = attribute.Key("app.page")
	AttrAppPageSizeKey        = attribute.Key("app.page.size")
	AttrAppTotalPagesKey      = attribute.Key("app.page.total")
	AttrAppUsernameKey        = attribute.Key("app.auth.username")
	AttrAppRequestTokenKey    = attribute.Key("app.fetch.token")
)

// Log field keys shared across packages
const (
	LogFieldProductID = "product_id"
	LogFieldCount     = "count"
	LogFieldPage      = "page"
	LogFieldUsername  = "username"
	LogFieldError     = "error"
)
