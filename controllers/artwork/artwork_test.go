package artworkcontroller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
	"github.com/harshitap649-prog/peterart07/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Order{},
		&models.Wishlist{},
		&models.ArtworkLike{},
		&models.ArtworkComment{},
	))
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, storage.ImageStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	images := storage.NewLocalStore(t.TempDir(), "/uploads/artworks")

	r := gin.New()
	r.POST("/admin/artworks", CreateArtwork(db, images))
	r.DELETE("/admin/artworks/:id", DeleteArtwork(db, images))
	r.GET("/artworks", GetArtworks(db))
	r.GET("/artworks/:id", GetArtworkByID(db))
	return r, images
}

func artworkForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "piece.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestValidateArtworkInput(t *testing.T) {
	_, fieldErrs := validateArtworkInput("", "")
	assert.Contains(t, fieldErrs, "title")
	assert.Contains(t, fieldErrs, "price")

	_, fieldErrs = validateArtworkInput("Sunset", "free")
	assert.Contains(t, fieldErrs, "price")

	_, fieldErrs = validateArtworkInput("Sunset", "-5")
	assert.Contains(t, fieldErrs, "price")

	price, fieldErrs := validateArtworkInput("Sunset", "100.50")
	assert.Empty(t, fieldErrs)
	assert.Equal(t, 100.50, price)
}

func TestCreateArtworkHandler(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	body, contentType := artworkForm(t, map[string]string{
		"title":       "Sunset",
		"description": "Oil on canvas",
		"price":       "100",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/admin/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Artwork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Sunset", created.Title)
	assert.Equal(t, 100.0, created.Price)
	assert.NotEmpty(t, created.Image)
}

func TestCreateArtworkRequiresImage(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	body, contentType := artworkForm(t, map[string]string{
		"title": "Sunset",
		"price": "100",
	}, false)
	req := httptest.NewRequest(http.MethodPost, "/admin/artworks", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.Artwork{}).Count(&n).Error)
	assert.EqualValues(t, 0, n, "nothing may be written on a rejected create")
}

func TestCreateArtworkRejectsBadPrice(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	for _, price := range []string{"", "abc", "0", "-10"} {
		body, contentType := artworkForm(t, map[string]string{
			"title": "Sunset",
			"price": price,
		}, true)
		req := httptest.NewRequest(http.MethodPost, "/admin/artworks", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "price %q", price)
	}
}

func TestDeleteArtworkCleansUpSocialRows(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	artwork := models.Artwork{Title: "Sunset", Price: 100, Image: "/uploads/artworks/x.jpg"}
	require.NoError(t, db.Create(&artwork).Error)
	require.NoError(t, db.Create(&models.Wishlist{UserID: 1, ArtworkID: artwork.ID}).Error)
	require.NoError(t, db.Create(&models.ArtworkLike{UserID: 1, ArtworkID: artwork.ID}).Error)

	req := httptest.NewRequest(http.MethodDelete, "/admin/artworks/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var wishlists, likes int64
	db.Model(&models.Wishlist{}).Count(&wishlists)
	db.Model(&models.ArtworkLike{}).Count(&likes)
	assert.EqualValues(t, 0, wishlists)
	assert.EqualValues(t, 0, likes)
}

func TestGetArtworkDetail(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	user := models.User{Email: "alice@example.com", PasswordHash: "x", Name: "Alice"}
	require.NoError(t, db.Create(&user).Error)
	artwork := models.Artwork{Title: "Sunset", Price: 100, Image: "/uploads/artworks/x.jpg"}
	require.NoError(t, db.Create(&artwork).Error)
	require.NoError(t, db.Create(&models.ArtworkLike{UserID: user.ID, ArtworkID: artwork.ID}).Error)
	require.NoError(t, db.Create(&models.ArtworkComment{
		UserID: user.ID, ArtworkID: artwork.ID, UserName: "Alice", Comment: "lovely",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/artworks/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Artwork   models.Artwork          `json:"artwork"`
		LikeCount int64                   `json:"like_count"`
		Comments  []models.ArtworkComment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sunset", resp.Artwork.Title)
	assert.EqualValues(t, 1, resp.LikeCount)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Alice", resp.Comments[0].UserName)

	req = httptest.NewRequest(http.MethodGet, "/artworks/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
