package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahat-dev/ramadan-times-api/internal/models"
)

type contentServiceMock struct{}

func (contentServiceMock) Offers() []models.Offer {
	return []models.Offer{{Title: "Business Website", OfferPrice: "৳7,500"}}
}

func (contentServiceMock) Duas() []models.Dua {
	return []models.Dua{{Title: "ইফতারের দোয়া"}}
}

func (contentServiceMock) Hadiths() []models.Hadith {
	return []models.Hadith{{Reference: "সহীহ বুখারী ১৯০৪"}}
}

func TestContentHandlerOffers(t *testing.T) {
	handler := NewContentHandler(contentServiceMock{})

	c, w := newTestContext(t, "/offers")
	handler.Offers(c)

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Data []models.Offer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Data, 1)
	assert.Equal(t, "৳7,500", payload.Data[0].OfferPrice)
}

func TestContentHandlerDuas(t *testing.T) {
	handler := NewContentHandler(contentServiceMock{})

	c, w := newTestContext(t, "/duas")
	handler.Duas(c)

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Data struct {
			Duas    []models.Dua    `json:"duas"`
			Hadiths []models.Hadith `json:"hadiths"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Data.Duas, 1)
	assert.Equal(t, "ইফতারের দোয়া", payload.Data.Duas[0].Title)
	require.Len(t, payload.Data.Hadiths, 1)
}
