package sitemap

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// staticPages is the storefront's fixed URL set. Dynamic entries
// (product and journal pages) are an extension point: fetch slugs from
// the catalog and append them here.
var staticPages = []string{
	"/",
	"/products",
	"/our-story",
	"/journal",
	"/contact",
	"/cart",
	"/checkout",
	"/login",
	"/privacy-policy",
	"/terms-of-service",
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

type Handler struct {
	siteURL string
}

func NewHandler(siteURL string) *Handler {
	return &Handler{siteURL: siteURL}
}

func (h *Handler) Get(ctx *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339)

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlEntry, 0, len(staticPages)),
	}
	for _, page := range staticPages {
		priority := "0.8"
		if page == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:      h.siteURL + page,
			LastMod:  now,
			Priority: priority,
		})
	}

	ctx.XML(http.StatusOK, set)
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/sitemap.xml", handler.Get)
}
