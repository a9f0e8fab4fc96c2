package site

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/setting"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/testutil"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler"
)

func newApp(t *testing.T, db *gorm.DB) (*fiber.App, *testutil.Views) {
	t.Helper()

	views := &testutil.Views{}
	app := fiber.New(fiber.Config{Views: views})

	require.NoError(t, (&Service{}).Init(app, testutil.NewConfig(), db, handler.Dependencies{}))

	return app, views
}

func render(t *testing.T, app *fiber.App, views *testutil.Views) fiber.Map {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	name, data, layouts := views.Last()
	assert.Equal(t, TemplateName, name)
	assert.Equal(t, []string{handler.BaseLayout}, layouts)

	return data
}

func TestInitNil(t *testing.T) {
	assert.ErrorIs(t, (&Service{}).Init(fiber.New(), nil, nil, handler.Dependencies{}), handler.ErrNilDependency)
}

func TestGet(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := project.Create(db, &project.Fields{Title: "Low", TechStack: models.TechStack{"Go"}})
	require.NoError(t, err)
	_, err = project.Create(db, &project.Fields{Title: "High", OrderIndex: 5})
	require.NoError(t, err)
	require.NoError(t, setting.Set(db, setting.KeyTagline, "Custom tagline"))

	app, views := newApp(t, db)
	data := render(t, app, views)

	projects, ok := data["Projects"].([]models.Project)
	require.True(t, ok)
	require.Len(t, projects, 2)
	assert.Equal(t, "High", projects[0].Title)
	assert.Equal(t, models.TechStack{"Go"}, projects[1].TechStack)
	assert.Equal(t, false, data["ProjectsError"])
	assert.Equal(t, "Test Portfolio", data["Title"])

	settings, ok := data["Settings"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Custom tagline", settings[setting.KeyTagline])
	assert.Equal(t, setting.Defaults[setting.KeyBio], settings[setting.KeyBio])
}

func TestGetEmpty(t *testing.T) {
	app, views := newApp(t, testutil.NewDB(t))
	data := render(t, app, views)

	assert.Empty(t, data["Projects"])
	assert.Equal(t, false, data["ProjectsError"])
}

func TestGetStoreFailure(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Project{}, &models.Setting{}))

	app, views := newApp(t, db)
	data := render(t, app, views)

	assert.Equal(t, true, data["ProjectsError"])
	assert.Empty(t, data["Projects"])
	assert.Equal(t, setting.WithDefaults(nil), data["Settings"])
}
