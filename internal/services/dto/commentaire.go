package dto

import (
	"time"

	"github.com/Amsa221/softskills-project/internal/models"
)

// CreateCommentaireRequest: valide and the authenticated-author link are
// server-assigned and deliberately absent here.
type CreateCommentaireRequest struct {
	ArticleID string  `json:"article_id" validate:"required"`
	Auteur    string  `json:"auteur" validate:"max=150"`
	Contenu   string  `json:"contenu" validate:"required,min=10,max=1000"`
	ParentID  *string `json:"parent_id"`
}

type CommentaireListQuery struct {
	Article string `form:"article"`
	Valide  *bool  `form:"valide"`
	Search  string `form:"search" validate:"max=100"`
}

// CommentaireThreaded is a node of the read-time reply tree.
type CommentaireThreaded struct {
	ID        string                `json:"id"`
	Auteur    string                `json:"auteur"`
	Contenu   string                `json:"contenu"`
	Valide    bool                  `json:"valide"`
	CreatedAt time.Time             `json:"created_at"`
	Reponses  []CommentaireThreaded `json:"reponses"`
}

// BuildCommentaireThread assembles the flat comment rows into a tree.
// Parent links are resolved through pointers first and subtrees are
// copied out only at the end, so the result does not depend on the row
// order even when siblings share a timestamp. A reply whose parent is
// not in the visible set is promoted to a root rather than dropped.
func BuildCommentaireThread(commentaires []models.Commentaire) []CommentaireThreaded {
	index := make(map[string]*CommentaireThreaded, len(commentaires))
	for i := range commentaires {
		c := &commentaires[i]
		index[c.ID] = &CommentaireThreaded{
			ID:        c.ID,
			Auteur:    c.Auteur,
			Contenu:   c.Contenu,
			Valide:    c.Valide,
			CreatedAt: c.CreatedAt,
		}
	}

	children := make(map[string][]*CommentaireThreaded, len(commentaires))
	rootIDs := make([]string, 0, len(commentaires))
	for i := range commentaires {
		c := &commentaires[i]
		if c.ParentID != nil {
			if _, ok := index[*c.ParentID]; ok {
				children[*c.ParentID] = append(children[*c.ParentID], index[c.ID])
				continue
			}
		}
		rootIDs = append(rootIDs, c.ID)
	}

	var materialize func(node *CommentaireThreaded) CommentaireThreaded
	materialize = func(node *CommentaireThreaded) CommentaireThreaded {
		out := *node
		out.Reponses = make([]CommentaireThreaded, 0, len(children[node.ID]))
		for _, child := range children[node.ID] {
			out.Reponses = append(out.Reponses, materialize(child))
		}
		return out
	}

	roots := make([]CommentaireThreaded, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, materialize(index[id]))
	}
	return roots
}
