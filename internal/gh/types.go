package gh

// PullRequest contains the pull request fields book-stack tracks
type PullRequest struct {
	Number         int    // PR number
	URL            string // PR URL
	State          string // "open", "draft", "closed", "merged"
	BaseRefName    string // base branch name
	HeadRefName    string // head branch name
	HeadRefOid     string // commit the head branch currently points at
	ReviewDecision string // "APPROVED", "CHANGES_REQUESTED", "REVIEW_REQUIRED" or ""
}
