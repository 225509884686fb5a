package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func newTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	repoDir := t.TempDir()
	repo, err := gogit.PlainInit(repoDir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	return repoDir, repo
}

func commitFile(t *testing.T, repoDir string, repo *gogit.Repository, rel, msg string, when time.Time) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	full := filepath.Join(repoDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(msg+"\n"+when.String()+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	sig := &object.Signature{Name: "Test Author", Email: "test@example.com", When: when}
	hash, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash
}

func assertMessages(t *testing.T, commits []RawCommit, want ...string) {
	t.Helper()

	if len(commits) != len(want) {
		t.Fatalf("len(commits) = %d, want %d: %#v", len(commits), len(want), commits)
	}
	for i := range want {
		if commits[i].Message != want[i] {
			t.Fatalf("commits[%d].Message = %q, want %q", i, commits[i].Message, want[i])
		}
	}
}

func readGoGit(t *testing.T, opts ReadOptions) []RawCommit {
	t.Helper()

	opts.Backend = BackendGoGit
	r, err := NewHistoryReader(opts)
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}
	commits, err := r.ReadCommits(context.Background())
	if err != nil {
		t.Fatalf("ReadCommits: %v", err)
	}
	return commits
}

func TestHistoryReader_GoGit_NewestFirst(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()

	first := commitFile(t, repoDir, repo, "a.txt", "feat(ui): add button", now.Add(-3*time.Hour))
	commitFile(t, repoDir, repo, "b.txt", "fix: null pointer\n\nLonger body text.", now.Add(-2*time.Hour))
	commitFile(t, repoDir, repo, "c.txt", "random commit message", now.Add(-1*time.Hour))

	commits := readGoGit(t, ReadOptions{RepoPath: repoDir})

	assertMessages(t, commits, "random commit message", "fix: null pointer", "feat(ui): add button")
	if commits[2].Hash != first.String() {
		t.Errorf("commits[2].Hash = %q, want %q", commits[2].Hash, first.String())
	}
	if commits[0].Author != "Test Author" {
		t.Errorf("Author = %q, want %q", commits[0].Author, "Test Author")
	}
	if commits[0].Date != now.Add(-1*time.Hour).Format("2006-01-02") {
		t.Errorf("Date = %q", commits[0].Date)
	}
}

func TestHistoryReader_GoGit_RespectsWindow(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()

	commitFile(t, repoDir, repo, "old.txt", "chore: ancient history", now.AddDate(-2, 0, 0))
	commitFile(t, repoDir, repo, "new.txt", "feat: recent work", now.AddDate(0, 0, -10))

	since := now.AddDate(0, 0, -365)
	commits := readGoGit(t, ReadOptions{RepoPath: repoDir, Since: &since})

	assertMessages(t, commits, "feat: recent work")
}

func TestHistoryReader_GoGit_EmptyWindowIsNotAnError(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()
	commitFile(t, repoDir, repo, "old.txt", "chore: ancient history", now.AddDate(-2, 0, 0))

	since := now.AddDate(0, 0, -365)
	commits := readGoGit(t, ReadOptions{RepoPath: repoDir, Since: &since})
	if len(commits) != 0 {
		t.Fatalf("len(commits) = %d, want 0", len(commits))
	}
}

func TestHistoryReader_GoGit_EmptyRepository(t *testing.T) {
	repoDir, _ := newTestRepo(t)

	for _, branch := range []string{"", "HEAD"} {
		commits := readGoGit(t, ReadOptions{RepoPath: repoDir, Branch: branch})
		if len(commits) != 0 {
			t.Fatalf("branch %q: len(commits) = %d, want 0", branch, len(commits))
		}
	}
}

func TestHistoryReader_GoGit_NotARepository(t *testing.T) {
	r, err := NewHistoryReader(ReadOptions{RepoPath: t.TempDir(), Backend: BackendGoGit})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	_, err = r.ReadCommits(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("ReadCommits error = %v, want ErrSourceUnavailable", err)
	}
}

func TestHistoryReader_GoGit_RespectsBranch(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()

	commitFile(t, repoDir, repo, "file.txt", "initial", now.Add(-3*time.Hour))

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	baseBranch := head.Name()

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature"),
		Create: true,
	}); err != nil {
		t.Fatalf("Checkout(feature): %v", err)
	}
	commitFile(t, repoDir, repo, "file.txt", "feature commit", now.Add(-2*time.Hour))

	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: baseBranch}); err != nil {
		t.Fatalf("Checkout(%s): %v", baseBranch, err)
	}
	commitFile(t, repoDir, repo, "base.txt", "base commit", now.Add(-1*time.Hour))

	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir, Branch: "feature"}),
		"feature commit", "initial")
	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir, Branch: baseBranch.Short()}),
		"base commit", "initial")
	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir, Branch: "HEAD"}),
		"base commit", "initial")
}

func TestHistoryReader_GoGit_UnknownBranch(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	commitFile(t, repoDir, repo, "file.txt", "initial", time.Now())

	r, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Branch: "does-not-exist", Backend: BackendGoGit})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}
	_, err = r.ReadCommits(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("ReadCommits error = %v, want ErrSourceUnavailable", err)
	}
}

func TestHistoryReader_GoGit_PathFilters(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()

	commitFile(t, repoDir, repo, "src/app.go", "feat(app): entry point", now.Add(-3*time.Hour))
	commitFile(t, repoDir, repo, "docs/guide.md", "docs: guide", now.Add(-2*time.Hour))
	commitFile(t, repoDir, repo, "src/app_test.go", "test(app): cover entry point", now.Add(-1*time.Hour))

	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir, Include: []string{"src/**"}}),
		"test(app): cover entry point", "feat(app): entry point")
	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir, Exclude: []string{"**/*_test.go"}}),
		"docs: guide", "feat(app): entry point")
}

func TestHistoryReader_GoGit_DropsPipeMessages(t *testing.T) {
	repoDir, repo := newTestRepo(t)
	now := time.Now()

	commitFile(t, repoDir, repo, "a.txt", "feat: a | b", now.Add(-2*time.Hour))
	commitFile(t, repoDir, repo, "b.txt", "fix: c", now.Add(-1*time.Hour))

	assertMessages(t, readGoGit(t, ReadOptions{RepoPath: repoDir}), "fix: c")
}

func TestSubjectLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"feat: x\n\nbody", "feat: x"},
		{"fix: y\n", "fix: y"},
		{"fix: wrap\ncontinued subject\n\nbody", "fix: wrap continued subject"},
		{"\n\nfeat: late start\n", "feat: late start"},
		{"docs: trailing   \nspace\t\n \nbody", "docs: trailing space"},
		{"  padded  ", "  padded"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := subjectLine(tt.in); got != tt.want {
			t.Errorf("subjectLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHistoryReader_BackendsAgreeOnSubjects(t *testing.T) {
	requireGit(t)

	repoDir, repo := newTestRepo(t)
	now := time.Now()
	commitFile(t, repoDir, repo, "a.txt", "fix: wrap\ncontinued subject\n\nbody", now.Add(-2*time.Hour))
	commitFile(t, repoDir, repo, "b.txt", "feat(ui): single line\n\nwith body", now.Add(-1*time.Hour))

	cli, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Backend: BackendGitCLI})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}
	fromCLI, err := cli.ReadCommits(context.Background())
	if err != nil {
		t.Fatalf("ReadCommits (git): %v", err)
	}
	fromGoGit := readGoGit(t, ReadOptions{RepoPath: repoDir})

	assertMessages(t, fromGoGit, "feat(ui): single line", "fix: wrap continued subject")
	if len(fromCLI) != len(fromGoGit) {
		t.Fatalf("git returned %d commits, go-git %d", len(fromCLI), len(fromGoGit))
	}
	for i := range fromCLI {
		if fromCLI[i] != fromGoGit[i] {
			t.Errorf("commit %d: git %+v, go-git %+v", i, fromCLI[i], fromGoGit[i])
		}
	}
}
