package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/test/helpers"
)

func TestCommentaire_CreateStartsUnmoderated(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")

	// The caller cannot smuggle in a moderated state.
	res, body := ts.SendRequest(t, "POST", "/api/v1/commentaires", "", map[string]interface{}{
		"article_id": article.ID,
		"auteur":     "Visiteur",
		"contenu":    "Tres bon article, merci beaucoup.",
		"valide":     true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var commentaire models.Commentaire
	require.NoError(t, json.Unmarshal([]byte(body), &commentaire))
	assert.False(t, commentaire.Valide)
	assert.Equal(t, "Visiteur", commentaire.Auteur)
	assert.Nil(t, commentaire.AuteurUserID)
}

func TestCommentaire_AuthenticatedAuthorIsDerivedFromToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")
	token := helpers.TokenFor(t, "user-2", "Bob", "user")

	res, body := ts.SendRequest(t, "POST", "/api/v1/commentaires", token, map[string]interface{}{
		"article_id": article.ID,
		"contenu":    "Commentaire d'un utilisateur connecte.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var commentaire models.Commentaire
	require.NoError(t, json.Unmarshal([]byte(body), &commentaire))
	require.NotNil(t, commentaire.AuteurUserID)
	assert.Equal(t, "user-2", *commentaire.AuteurUserID)
	assert.Equal(t, "Bob", commentaire.Auteur)
}

func TestCommentaire_BodyMinimumLength(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")

	res, body := ts.SendRequest(t, "POST", "/api/v1/commentaires", "", map[string]interface{}{
		"article_id": article.ID,
		"contenu":    "trop court",
	})
	// 10 runes exactly is the floor, "trop court" passes; 9 must not.
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/commentaires", "", map[string]interface{}{
		"article_id": article.ID,
		"contenu":    "neuf char",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCommentaire_ParentMustBelongToSameArticle(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	articleA := helpers.CreateTestArticle(t, ts.DB, "Article A", "article-a", models.ArticleStatutPublished, "user-1")
	articleB := helpers.CreateTestArticle(t, ts.DB, "Article B", "article-b", models.ArticleStatutPublished, "user-1")
	parent := helpers.CreateTestCommentaire(t, ts.DB, articleA.ID, true, nil)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/commentaires", "", map[string]interface{}{
		"article_id": articleB.ID,
		"contenu":    "Reponse rattachee au mauvais article.",
		"parent_id":  parent.ID,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCommentaire_ModerationGatesVisibility(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")
	visible := helpers.CreateTestCommentaire(t, ts.DB, article.ID, true, nil)
	pending := helpers.CreateTestCommentaire(t, ts.DB, article.ID, false, nil)

	// The public list carries only moderated comments.
	res, body := ts.SendRequest(t, "GET", "/api/v1/commentaires?article="+article.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, visible.ID)
	assert.NotContains(t, body, pending.ID)

	// An unmoderated comment reads as absent for the public.
	res, _ = ts.SendRequest(t, "GET", "/api/v1/commentaires/"+pending.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Staff sees the moderation queue.
	staffToken := helpers.TokenFor(t, "staff-1", "Mod", "staff")
	res, body = ts.SendRequest(t, "GET", "/api/v1/commentaires?article="+article.ID, staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, pending.ID)

	// Moderation requires an elevated role.
	userToken := helpers.TokenFor(t, "user-2", "Bob", "user")
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/commentaires/"+pending.ID+"/valider", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/commentaires/"+pending.ID+"/valider", staffToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "GET", "/api/v1/commentaires/"+pending.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestCommentaire_ThreadedRepliesOnArticleDetail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")
	root := helpers.CreateTestCommentaire(t, ts.DB, article.ID, true, nil)
	reply := helpers.CreateTestCommentaire(t, ts.DB, article.ID, true, &root.ID)
	hiddenReply := helpers.CreateTestCommentaire(t, ts.DB, article.ID, false, &root.ID)

	res, body := ts.SendRequest(t, "GET", "/api/v1/articles/"+article.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail dto.ArticleDetail
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.Len(t, detail.Commentaires, 1)
	assert.Equal(t, root.ID, detail.Commentaires[0].ID)
	require.Len(t, detail.Commentaires[0].Reponses, 1)
	assert.Equal(t, reply.ID, detail.Commentaires[0].Reponses[0].ID)
	assert.NotContains(t, body, hiddenReply.ID)
}

func TestCommentaire_ReplyToHiddenParentPromotedToRoot(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	article := helpers.CreateTestArticle(t, ts.DB, "Article", "article", models.ArticleStatutPublished, "user-1")
	hiddenRoot := helpers.CreateTestCommentaire(t, ts.DB, article.ID, false, nil)
	orphan := helpers.CreateTestCommentaire(t, ts.DB, article.ID, true, &hiddenRoot.ID)

	res, body := ts.SendRequest(t, "GET", "/api/v1/articles/"+article.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail dto.ArticleDetail
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	require.Len(t, detail.Commentaires, 1)
	assert.Equal(t, orphan.ID, detail.Commentaires[0].ID)
}
