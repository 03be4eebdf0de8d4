package auth

import (
	"github.com/Amsa221/softskills-project/internal/models"
)

// Visibility predicates: (viewer, entity) -> bool. The repositories
// apply the same rules as SQL scopes for list queries; single-record
// reads are checked through these after the fetch, so a hidden record
// is indistinguishable from a missing one.

func CanViewArticle(v Viewer, a *models.Article) bool {
	if v.IsElevated() {
		return true
	}
	return a.Statut == models.ArticleStatutPublished
}

func CanViewCommentaire(v Viewer, c *models.Commentaire) bool {
	if v.IsElevated() {
		return true
	}
	return c.Valide
}

func CanViewPayment(v Viewer, p *models.Payment) bool {
	if v.IsElevated() {
		return true
	}
	return !v.IsAnonymous() && p.OwnerID == v.UserID
}
