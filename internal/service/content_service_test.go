package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentServiceOffers(t *testing.T) {
	svc := NewContentService()

	offers := svc.Offers()
	require.Len(t, offers, 4)
	assert.Equal(t, "E-commerce Website", offers[0].Title)
	assert.Equal(t, "৳12,500", offers[0].OfferPrice)
	for _, offer := range offers {
		assert.NotEmpty(t, offer.Title)
		assert.NotEmpty(t, offer.Features)
		assert.NotEmpty(t, offer.OriginalPrice)
		assert.NotEmpty(t, offer.OfferPrice)
	}
}

func TestContentServiceDuasAndHadiths(t *testing.T) {
	svc := NewContentService()

	duas := svc.Duas()
	require.NotEmpty(t, duas)
	assert.Equal(t, "ইফতারের দোয়া", duas[0].Title)
	assert.NotEmpty(t, duas[0].Reference)

	hadiths := svc.Hadiths()
	require.Len(t, hadiths, 2)
	for _, h := range hadiths {
		assert.NotEmpty(t, h.Arabic)
		assert.NotEmpty(t, h.Bangla)
		assert.NotEmpty(t, h.Reference)
	}
}

func TestContentServiceWebsiteTypes(t *testing.T) {
	svc := NewContentService()

	types := svc.WebsiteTypes()
	require.NotEmpty(t, types)
	assert.Contains(t, types, "E-commerce Store")
	assert.Equal(t, "Other", types[len(types)-1])
}
