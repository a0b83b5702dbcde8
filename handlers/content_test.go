package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jooyongc/goldensnow360-dubai/handlers"
	"github.com/jooyongc/goldensnow360-dubai/models"
	"github.com/jooyongc/goldensnow360-dubai/store"
)

func TestContentDefaultsWhenNothingStored(t *testing.T) {
	env := newTestEnv(t, store.NewMemory())

	rec := env.do(http.MethodGet, "/api/content/hero", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hero models.HeroSection
	decodeBody(t, rec, &hero)
	assert.Equal(t, store.DemoHero().Title, hero.Title)

	rec = env.do(http.MethodGet, "/api/content/about", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var about handlers.AboutResponse
	decodeBody(t, rec, &about)
	assert.Len(t, about.About.Stats, 4)
	assert.Equal(t, 3, countParagraphs(about.DescriptionHTML))

	rec = env.do(http.MethodGet, "/api/content/contact", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info models.ContactInfo
	decodeBody(t, rec, &info)
	assert.Equal(t, "info@goldensnow360.com", info.Email)

	rec = env.do(http.MethodGet, "/api/content/footer", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var footer models.Footer
	decodeBody(t, rec, &footer)
	assert.Equal(t, []string{"Palm Jumeirah", "Downtown Dubai", "Dubai Marina", "Business Bay", "JBR"}, footer.AreaList)
	assert.Equal(t, "Golden Snow 360. All rights reserved.", footer.Copyright)
}

func countParagraphs(html string) int {
	n := 0
	for i := 0; i+3 <= len(html); i++ {
		if html[i:i+3] == "<p>" {
			n++
		}
	}
	return n
}

func TestSaveContent(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.login(t)

	rec := env.do(http.MethodPut, "/api/admin/content/hero", `{"title":"Dubai in 360°","subtitle":"Walk through","cta_link":"/vr-room"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = env.do(http.MethodGet, "/api/home", "", "")
	var home handlers.HomeResponse
	decodeBody(t, rec, &home)
	assert.Equal(t, "Dubai in 360°", home.Hero.Title)
	assert.Equal(t, "home", home.Hero.Page)

	rec = env.do(http.MethodPut, "/api/admin/content/about",
		`{"title":"About us","description":"We **sell** homes.","stats":[{"label":"Listings","value":"42"}]}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = env.do(http.MethodGet, "/api/content/about", "", "")
	var about handlers.AboutResponse
	decodeBody(t, rec, &about)
	assert.Equal(t, "About us", about.About.Title)
	require.Len(t, about.About.Stats, 1)
	assert.Equal(t, 1, about.About.Stats[0].SortOrder)
	assert.Contains(t, about.DescriptionHTML, "<strong>sell</strong>")

	rec = env.do(http.MethodPut, "/api/admin/content/footer",
		`{"description":"Luxury homes","areas":"Palm Jumeirah, , Creek Harbour","copyright":"GS360","address":"Boulevard Plaza","phone":"+971 4 000 0000","email":"hello@goldensnow360.com"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var footer models.Footer
	decodeBody(t, rec, &footer)
	assert.Equal(t, []string{"Palm Jumeirah", "Creek Harbour"}, footer.AreaList)
	assert.Equal(t, "GS360", footer.Copyright)

	rec = env.do(http.MethodGet, "/api/content/contact", "", "")
	var info models.ContactInfo
	decodeBody(t, rec, &info)
	assert.Equal(t, "Boulevard Plaza", info.Address)
	assert.Equal(t, "hello@goldensnow360.com", info.Email)
	assert.Equal(t, store.DemoContactInfo().WhatsApp, info.WhatsApp)
}
