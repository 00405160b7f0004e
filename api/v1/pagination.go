package v1

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yamdb-api/dto"
)

// pageQuery reads ?page= and ?page_size=
func pageQuery(c *gin.Context, defaultSize int) dto.PageQuery {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("page_size"))
	return dto.PageQuery{Page: page, PageSize: size}.Normalize(defaultSize)
}

// withLinks fills next and previous with absolute URLs of the neighbouring pages
func withLinks[T any](c *gin.Context, q dto.PageQuery, resp dto.PageResponse[T]) dto.PageResponse[T] {
	if resp.Results == nil {
		resp.Results = []T{}
	}
	if q.Page < dto.TotalPages(resp.Count, q.PageSize) {
		next := pageURL(c, q.Page+1)
		resp.Next = &next
	}
	if q.Page > 1 {
		prev := pageURL(c, q.Page-1)
		resp.Previous = &prev
	}
	return resp
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	values := c.Request.URL.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: values.Encode(),
	}
	return u.String()
}
