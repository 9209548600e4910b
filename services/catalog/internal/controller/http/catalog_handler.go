package http

import (
	"net/http"
	"strconv"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/logger"
	"creator-hub/services/catalog/internal/listing"
	"creator-hub/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderTotalCount  = "X-Total-Count"
	HeaderResultLabel = "X-Result-Label"
)

type ErrorResponse struct {
	Message string        `json:"message"`
	Kind    apperror.Kind `json:"kind,omitempty"`
}

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// RegisterRoutes mounts the read API on group. /creators/featured is
// registered ahead of /creators/:slug and, being static, always wins over it.
func (h *CatalogHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/categories", h.ListCategories)

	creators := group.Group("/creators")
	{
		creators.GET("", h.ListCreators)
		creators.GET("/featured", h.GetFeaturedCreators)
		creators.GET("/:slug", h.GetCreator)
		creators.GET("/:slug/tiers", h.GetCreatorTiers)
		creators.GET("/:slug/posts", h.GetCreatorPosts)
		creators.GET("/:slug/products", h.GetCreatorProducts)
	}
}

// ListCreators godoc
// @Summary      List creators
// @Description  All creators, optionally narrowed by a case-insensitive search on name or tagline and an exact category ("All" or empty selects every category)
// @Tags         creators
// @Produce      json
// @Param        search    query  string  false  "Search text"
// @Param        category  query  string  false  "Creator category"
// @Success      200  {array}   entity.Creator
// @Header       200  {integer} X-Total-Count   "Number of creators returned"
// @Header       200  {string}  X-Result-Label  "e.g. 1 creator found"
// @Failure      500  {object}  ErrorResponse
// @Router       /creators [get]
func (h *CatalogHandler) ListCreators(c *gin.Context) {
	var q listing.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid query", Kind: apperror.KindValidation})
		return
	}

	view, err := h.catalogUseCase.ListCreators(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err, "Failed to fetch creators")
		return
	}

	c.Header(HeaderTotalCount, strconv.Itoa(view.Count))
	c.Header(HeaderResultLabel, view.Label)
	c.JSON(http.StatusOK, view.Creators)
}

// GetFeaturedCreators godoc
// @Summary      Featured creators
// @Description  Verified creators shown on the landing page
// @Tags         creators
// @Produce      json
// @Success      200  {array}   entity.Creator
// @Failure      500  {object}  ErrorResponse
// @Router       /creators/featured [get]
func (h *CatalogHandler) GetFeaturedCreators(c *gin.Context) {
	creators, err := h.catalogUseCase.GetFeaturedCreators(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch featured creators")
		return
	}
	c.JSON(http.StatusOK, creators)
}

// GetCreator godoc
// @Summary      Get creator by slug
// @Tags         creators
// @Produce      json
// @Param        slug  path  string  true  "Creator slug"
// @Success      200  {object}  entity.Creator
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /creators/{slug} [get]
func (h *CatalogHandler) GetCreator(c *gin.Context) {
	creator, err := h.catalogUseCase.GetCreatorBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch creator")
		return
	}
	c.JSON(http.StatusOK, creator)
}

// GetCreatorTiers godoc
// @Summary      Creator membership tiers
// @Description  Tiers ordered by monthly price, cheapest first
// @Tags         creators
// @Produce      json
// @Param        slug  path  string  true  "Creator slug"
// @Success      200  {array}   entity.Tier
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /creators/{slug}/tiers [get]
func (h *CatalogHandler) GetCreatorTiers(c *gin.Context) {
	tiers, err := h.catalogUseCase.GetCreatorTiers(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch tiers")
		return
	}
	c.JSON(http.StatusOK, tiers)
}

// GetCreatorPosts godoc
// @Summary      Creator posts
// @Description  Posts newest first. Patron-only posts carry the minimum tier price that unlocks them.
// @Tags         creators
// @Produce      json
// @Param        slug  path  string  true  "Creator slug"
// @Success      200  {array}   entity.Post
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /creators/{slug}/posts [get]
func (h *CatalogHandler) GetCreatorPosts(c *gin.Context) {
	posts, err := h.catalogUseCase.GetCreatorPosts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetCreatorProducts godoc
// @Summary      Creator shop products
// @Description  Products newest first. Prices are in cents.
// @Tags         creators
// @Produce      json
// @Param        slug  path  string  true  "Creator slug"
// @Success      200  {array}   entity.Product
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /creators/{slug}/products [get]
func (h *CatalogHandler) GetCreatorProducts(c *gin.Context) {
	products, err := h.catalogUseCase.GetCreatorProducts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListCategories godoc
// @Summary      Creator categories
// @Description  Explore page filter options, "All" first
// @Tags         creators
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogUseCase.Categories())
}

// respondError writes the error's kind and user-facing message. Internal
// errors are logged and answered with fallback only.
func (h *CatalogHandler) respondError(c *gin.Context, err error, fallback string) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		h.logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apperror.HTTPStatus(kind), ErrorResponse{
		Message: apperror.MessageOf(err, fallback),
		Kind:    kind,
	})
}
