package apidocs

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON error returned by the API.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RequestValidator returns Echo middleware that checks every request against
// doc. Requests for paths the document does not describe reach the next
// handler untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			switch routeErrorReason(err) {
			case "":
			case routers.ErrPathNotFound.Error():
				return next(c)
			case routers.ErrMethodNotAllowed.Error():
				return c.JSON(http.StatusMethodNotAllowed, ErrorBody{
					Code:    http.StatusMethodNotAllowed,
					Message: "Method not allowed",
				})
			default:
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, ErrorBody{
					Code:    http.StatusBadRequest,
					Message: requestErrorMessage(err),
				})
			}

			return next(c)
		}
	}, nil
}

// routeErrorReason returns the reason of a router lookup failure. The router
// reports misses as *routers.RouteError values that do not wrap the sentinels.
func routeErrorReason(err error) string {
	if err == nil {
		return ""
	}
	var routeErr *routers.RouteError
	if errors.As(err, &routeErr) {
		return routeErr.Reason
	}
	if errors.Is(err, routers.ErrPathNotFound) {
		return routers.ErrPathNotFound.Error()
	}
	if errors.Is(err, routers.ErrMethodNotAllowed) {
		return routers.ErrMethodNotAllowed.Error()
	}
	return err.Error()
}

func requestErrorMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "Invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Reason
		}
		if reqErr.Reason != "" {
			return "Invalid request body: " + reqErr.Reason
		}
		return "Invalid request body"
	}
	return "Invalid request"
}
