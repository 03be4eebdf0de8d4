package integration_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/test/helpers"
)

func TestArticle_CreateRequiresAuthAndSlugsAreUnique(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	body := map[string]interface{}{
		"titre":   "Soft Skills 101",
		"contenu": "Un contenu suffisamment long pour passer la validation.",
		"statut":  "published",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/articles", "", body)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token := helpers.TokenFor(t, "user-1", "Alice", "user")

	res, resBody := ts.SendRequest(t, "POST", "/api/v1/articles", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)
	var first models.Article
	require.NoError(t, json.Unmarshal([]byte(resBody), &first))
	assert.Equal(t, "soft-skills-101", first.Slug)
	assert.Equal(t, "Alice", first.AuteurNom)

	// Same title again: the slug gets a numeric suffix.
	res, resBody = ts.SendRequest(t, "POST", "/api/v1/articles", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, resBody)
	var second models.Article
	require.NoError(t, json.Unmarshal([]byte(resBody), &second))
	assert.Equal(t, "soft-skills-101-1", second.Slug)
}

func TestArticle_ConcurrentCreatesWithSameTitle(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.TokenFor(t, "user-1", "Alice", "user")

	body := map[string]interface{}{
		"titre":   "Prise de parole",
		"contenu": "Un contenu suffisamment long pour passer la validation.",
	}

	// Two identical titles racing for the same slug; the loser of the
	// unique index must come back with a suffixed slug, not an error.
	var wg sync.WaitGroup
	results := make(chan string, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, resBody := ts.SendRequest(t, "POST", "/api/v1/articles", token, body)
			if res.StatusCode != http.StatusCreated {
				t.Errorf("expected 201, got %d: %s", res.StatusCode, resBody)
				return
			}
			var created models.Article
			if err := json.Unmarshal([]byte(resBody), &created); err != nil {
				t.Errorf("unmarshal article: %v", err)
				return
			}
			results <- created.Slug
		}()
	}
	wg.Wait()
	close(results)

	slugs := map[string]bool{}
	for s := range results {
		slugs[s] = true
	}
	assert.Len(t, slugs, 2, "each article got its own slug")
	assert.Contains(t, slugs, "prise-de-parole")
	assert.Contains(t, slugs, "prise-de-parole-1")
}

func TestArticle_DraftsHiddenFromPublic(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	published := helpers.CreateTestArticle(t, ts.DB, "Visible", "visible", models.ArticleStatutPublished, "user-1")
	draft := helpers.CreateTestArticle(t, ts.DB, "Hidden", "hidden", models.ArticleStatutDraft, "user-1")

	// Anonymous list holds only the published article.
	res, body := ts.SendRequest(t, "GET", "/api/v1/articles", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, published.ID)
	assert.NotContains(t, body, draft.ID)

	// A draft is absent for the public, not forbidden.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/articles/"+draft.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res, _ = ts.SendRequest(t, "GET", "/api/v1/articles/hidden", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Ordinary authenticated readers get the same view.
	userToken := helpers.TokenFor(t, "user-2", "Bob", "user")
	res, _ = ts.SendRequest(t, "GET", "/api/v1/articles/"+draft.ID, userToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Staff sees drafts everywhere.
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")
	res, body = ts.SendRequest(t, "GET", "/api/v1/articles/"+draft.ID, staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Hidden")
	res, body = ts.SendRequest(t, "GET", "/api/v1/articles", staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, draft.ID)
}

func TestArticle_UpdateAllowedForAuthorAndStaffOnly(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Original", "original", models.ArticleStatutPublished, "user-1")

	update := map[string]interface{}{"titre": "Edited title"}

	// A stranger may read it but not touch it.
	strangerToken := helpers.TokenFor(t, "user-2", "Bob", "user")
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/articles/"+article.ID, strangerToken, update)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The author can, and the slug survives the rename.
	authorToken := helpers.TokenFor(t, "user-1", "Alice", "user")
	res, body := ts.SendRequest(t, "PUT", "/api/v1/articles/"+article.ID, authorToken, update)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated models.Article
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Edited title", updated.Titre)
	assert.Equal(t, "original", updated.Slug)

	// Staff may delete someone else's article.
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")
	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/articles/"+article.ID, staffToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestArticle_HiddenWriteTargetReadsAsAbsent(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	draft := helpers.CreateTestArticle(t, ts.DB, "Secret draft", "secret-draft", models.ArticleStatutDraft, "user-1")

	// A non-author updating a draft they cannot even see gets 404.
	strangerToken := helpers.TokenFor(t, "user-2", "Bob", "user")
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/articles/"+draft.ID, strangerToken,
		map[string]interface{}{"titre": "Probe"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestArticle_FilterByCategorieAndSearch(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	categorie := helpers.CreateTestCategorie(t, ts.DB, "Communication", "communication")
	inCat := helpers.CreateTestArticle(t, ts.DB, "Ecoute active", "ecoute-active", models.ArticleStatutPublished, "user-1")
	require.NoError(t, ts.DB.Model(&inCat).Update("categorie_id", categorie.ID).Error)
	outCat := helpers.CreateTestArticle(t, ts.DB, "Gestion du temps", "gestion-du-temps", models.ArticleStatutPublished, "user-1")

	res, body := ts.SendRequest(t, "GET", "/api/v1/articles?categorie=communication", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, inCat.ID)
	assert.NotContains(t, body, outCat.ID)

	res, body = ts.SendRequest(t, "GET", "/api/v1/articles?search=temps", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, outCat.ID)
	assert.NotContains(t, body, inCat.ID)
}

func TestArticle_TagsAttachedOnCreate(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.TokenFor(t, "user-1", "Alice", "user")

	res, body := ts.SendRequest(t, "POST", "/api/v1/articles", token, map[string]interface{}{
		"titre":   "Travail en equipe",
		"contenu": "Un contenu suffisamment long pour passer la validation.",
		"statut":  "published",
		"tags":    []string{"equipe", "Collaboration"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var tagCount int64
	require.NoError(t, ts.DB.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)

	// Tag names are normalized, so re-using one must not duplicate it.
	res, _ = ts.SendRequest(t, "POST", "/api/v1/articles", token, map[string]interface{}{
		"titre":   "Collaboration avancee",
		"contenu": "Un contenu suffisamment long pour passer la validation.",
		"tags":    []string{"collaboration"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.NoError(t, ts.DB.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)
}
