package web

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/rs/zerolog/log"
)

// ProductHandler maneja las vistas y acciones del inventario (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	reportUC *usecase.ReportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, reportUC *usecase.ReportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, reportUC: reportUC}
}

// PageLink un elemento de la barra de paginación.
type PageLink struct {
	Number   int
	URL      string
	Active   bool
	Ellipsis bool
}

// List renderiza el listado paginado con búsqueda.
// GET /inventory?q=&page=&deleted=&created=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	q := c.Query("q")
	page := c.QueryInt("page", 1)

	result, err := h.uc.ListPage(c.Context(), user.ID, q, page)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("listado de inventario falló")
		// Los flags del redirect se conservan: un delete exitoso cuyo listado
		// posterior falla sigue mostrando su banner de resultado.
		return c.Render("inventory", fiber.Map{
			"Title":      "Inventario",
			"User":       user,
			"Theme":      CurrentTheme(c),
			"LoadError":  true,
			"Inventario": &dto.ProductPage{Query: q, Page: 1, TotalPages: 1, PageSize: usecase.PageSize},
			"Deleted":    c.Query("deleted"),
			"Created":    c.Query("created"),
			"ReportURL":  reportURL(q),
		}, "layouts/main")
	}

	return c.Render("inventory", fiber.Map{
		"Title":      "Inventario",
		"User":       user,
		"Theme":      CurrentTheme(c),
		"Inventario": result,
		"Deleted":    c.Query("deleted"),
		"Created":    c.Query("created"),
		"Pages":      buildPageLinks(result),
		"PrevURL":    pageURL(result.Query, result.Page-1),
		"NextURL":    pageURL(result.Query, result.Page+1),
		"ReportURL":  reportURL(result.Query),
	}, "layouts/main")
}

// NewForm renderiza el formulario de alta.
// GET /add-product?created=
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("add_product", fiber.Map{
		"Title":   "Agregar producto",
		"User":    CurrentUser(c),
		"Theme":   CurrentTheme(c),
		"Created": c.Query("created"),
	}, "layouts/main")
}

// Create valida y persiste un nuevo producto; siempre responde con redirect.
// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var form dto.CreateProductForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/add-product?created=0", fiber.StatusSeeOther)
	}
	if err := h.uc.Create(c.Context(), user.ID, form); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("alta de producto falló")
		return c.Redirect("/add-product?created=0", fiber.StatusSeeOther)
	}
	return c.Redirect("/inventory?created=1", fiber.StatusSeeOther)
}

// Delete elimina el producto y redirige al listado con el flag de resultado.
// El redirect es incondicional: esta acción nunca produce una página de error.
// POST /inventory/delete (campos: id, q, page)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	user := CurrentUser(c)
	id := c.FormValue("id")
	q := c.FormValue("q")
	page, err := strconv.Atoi(c.FormValue("page"))
	if err != nil || page < 1 {
		page = 1
	}

	outcome := "0"
	if h.uc.Delete(c.Context(), user.ID, id) {
		outcome = "1"
	}

	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("deleted", outcome)
	return c.Redirect("/inventory?"+params.Encode(), fiber.StatusSeeOther)
}

// Report descarga el reporte PDF del inventario con el filtro vigente.
// GET /inventory/report.pdf?q=
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	user := CurrentUser(c)
	q := c.Query("q")

	doc, err := h.reportUC.BuildReport(c.Context(), user.ID, user.Name, q)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("reporte PDF falló")
		return c.Redirect(pageURL(q, 1), fiber.StatusSeeOther)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(doc)
}

// pageURL arma la URL del listado preservando el término de búsqueda.
func pageURL(q string, page int) string {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	params.Set("page", strconv.Itoa(page))
	return "/inventory?" + params.Encode()
}

func reportURL(q string) string {
	if q == "" {
		return "/inventory/report.pdf"
	}
	params := url.Values{}
	params.Set("q", q)
	return "/inventory/report.pdf?" + params.Encode()
}

// buildPageLinks calcula la ventana de páginas visibles (actual ± 2, con
// extremos siempre presentes y elipsis entre saltos).
func buildPageLinks(p *dto.ProductPage) []PageLink {
	if p.TotalPages <= 1 {
		return nil
	}
	const delta = 2

	var links []PageLink
	add := func(n int) {
		links = append(links, PageLink{
			Number: n,
			URL:    pageURL(p.Query, n),
			Active: n == p.Page,
		})
	}
	addEllipsis := func() {
		links = append(links, PageLink{Ellipsis: true})
	}

	add(1)
	lo := p.Page - delta
	if lo < 2 {
		lo = 2
	}
	hi := p.Page + delta
	if hi > p.TotalPages-1 {
		hi = p.TotalPages - 1
	}
	if lo > 2 {
		addEllipsis()
	}
	for n := lo; n <= hi; n++ {
		add(n)
	}
	if hi < p.TotalPages-1 {
		addEllipsis()
	}
	add(p.TotalPages)
	return links
}
