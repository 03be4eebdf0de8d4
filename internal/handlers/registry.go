package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	CategorieHandler   *CategorieHandler
	ArticleHandler     *ArticleHandler
	CommentaireHandler *CommentaireHandler
	PaymentHandler     *PaymentHandler
	AnalyticsHandler   *AnalyticsHandler
	SkillHandler       *SkillHandler
	NewsletterHandler  *NewsletterHandler
}
