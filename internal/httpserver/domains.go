package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/internal/auth"
	authHTTP "storefront/internal/auth/delivery/http"
	authUC "storefront/internal/auth/usecase"
	"storefront/internal/cart"
	cartHTTP "storefront/internal/cart/delivery/http"
	cartRepo "storefront/internal/cart/repository/remote"
	cartUC "storefront/internal/cart/usecase"
	"storefront/internal/catalog"
	catalogHTTP "storefront/internal/catalog/delivery/http"
	catalogRepo "storefront/internal/catalog/repository/remote"
	catalogUC "storefront/internal/catalog/usecase"
	"storefront/internal/middleware"
	"storefront/internal/pagination"
	"storefront/internal/session"
	sessionHTTP "storefront/internal/session/delivery/http"
	"storefront/internal/web"
	"storefront/pkg/metrics"
)

type domains struct {
	catalog catalog.UseCase
	cart    cart.UseCase
	auth    auth.UseCase
}

// setupDomains initializes every domain and registers its JSON routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.catalogClient, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (domains, error) {
	// Catalog
	catalogUseCase := catalogUC.New(catalogRepo.New(srv.catalogClient, srv.l), srv.l, catalogUC.Config{
		CatalogPaging: pagingOptions(srv.pagination.Catalog),
		RelatedPaging: pagingOptions(srv.pagination.Related),
		CategoriesTTL: srv.categoriesTTL,
	})
	catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, catalogUseCase))
	srv.l.Infof(ctx, "Catalog domain registered")

	// Views
	store := session.NewStore(catalogUseCase, srv.l, session.Config{
		MaxSessions: srv.session.MaxSessions,
		TTL:         srv.session.TTL,
		Paging:      pagingOptions(srv.pagination.Catalog),
		OnStale:     metrics.StaleDiscard,
	})
	sessionHTTP.RegisterRoutes(api, sessionHTTP.New(srv.l, store))
	srv.l.Infof(ctx, "View session domain registered")

	// Cart
	cartUseCase := cartUC.New(cartRepo.New(srv.catalogClient, srv.l), srv.l, pagingOptions(srv.pagination.Cart))
	cartHTTP.RegisterRoutes(api, cartHTTP.New(srv.l, cartUseCase))
	srv.l.Infof(ctx, "Cart domain registered")

	// Auth
	authUseCase := authUC.New(srv.authClient, srv.l)
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, authUseCase, mw), mw)
	srv.l.Infof(ctx, "Auth domain registered")

	return domains{
		catalog: catalogUseCase,
		cart:    cartUseCase,
		auth:    authUseCase,
	}, nil
}

// setupWeb registers the HTML pages on top of the domain use cases.
func (srv *HTTPServer) setupWeb(ctx context.Context, d domains, mw middleware.Middleware) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	srv.gin.SetHTMLTemplate(tmpl)

	h := web.New(srv.l, mw, web.Config{
		Catalog:      d.catalog,
		Cart:         d.cart,
		Auth:         d.auth,
		LimitChoices: limitChoices(srv.pagination.Catalog),
	})
	web.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Web pages registered")
	return nil
}

func pagingOptions(cfg config.PageConfig) pagination.Options {
	return pagination.Options{DefaultLimit: cfg.DefaultLimit, MaxLimit: cfg.MaxLimit}
}

// limitChoices offers the default page size and its multiples up to the maximum.
func limitChoices(cfg config.PageConfig) []int {
	if cfg.DefaultLimit <= 0 {
		return nil
	}
	var out []int
	for _, m := range []int{1, 2, 4} {
		n := cfg.DefaultLimit * m
		if cfg.MaxLimit > 0 && n > cfg.MaxLimit {
			break
		}
		out = append(out, n)
	}
	return out
}
