package arguments

const (
	allFilesTokenConstant      = "."
	pathSeparatorTokenConstant = "--"
	forceFlagConstant          = "-f"
	messageFlagConstant        = "-m"
	baseBranchFlagConstant     = "-b"
	ignoreUnmatchFlagConstant  = "--ignore-unmatch"
	headReferenceConstant      = "HEAD"
	defaultRemoteNameConstant  = "origin"
	pathListSeparatorConstant  = " "
)

// DefaultRemoteName is the remote used by Push when none is given.
const DefaultRemoteName = defaultRemoteNameConstant

// HeadReference names the currently checked out commit.
const HeadReference = headReferenceConstant

// Add builds arguments for git add. Without files every change is staged.
func Add(files []string, extraArguments []string) []string {
	argumentList := NewArgumentList(extraArguments)
	if len(files) == 0 {
		return argumentList.Append(allFilesTokenConstant).Tokens()
	}
	return argumentList.Append(pathList(files)).Tokens()
}

// Branch builds arguments for git branch with a quoted branch name.
func Branch(branchName string, force bool, extraArguments []string) []string {
	argumentList := NewArgumentList(extraArguments)
	if force {
		argumentList.Append(forceFlagConstant)
	}
	return argumentList.Append(Quote(branchName)).Tokens()
}

// Checkout builds arguments for git checkout with a quoted branch name.
func Checkout(branchName string, extraArguments []string) []string {
	return NewArgumentList(extraArguments).Append(Quote(branchName)).Tokens()
}

// Commit builds arguments for git commit with a quoted message.
func Commit(message string, extraArguments []string) []string {
	return NewArgumentList(extraArguments).AppendFlagValue(messageFlagConstant, Quote(message)).Tokens()
}

// Push builds arguments for git push. An empty remote name means DefaultRemoteName.
// Remote and branch names are quoted so ref names containing quotes reach git intact.
func Push(branchName string, remoteName string, extraArguments []string) []string {
	if len(remoteName) == 0 {
		remoteName = defaultRemoteNameConstant
	}
	return NewArgumentList(extraArguments).Append(Quote(remoteName), Quote(branchName)).Tokens()
}

// RevParse builds arguments for git rev-parse.
func RevParse(extraArguments []string) []string {
	return NewArgumentList(extraArguments).Tokens()
}

// CurrentCommitHash builds the rev-parse arguments resolving HEAD.
func CurrentCommitHash() []string {
	return RevParse([]string{headReferenceConstant})
}

// Rm builds arguments for git rm. The ignore-unmatch flag precedes the path separator.
func Rm(files []string, ignoreUnmatch bool, extraArguments []string) []string {
	argumentList := NewArgumentList(extraArguments)
	if ignoreUnmatch {
		argumentList.Append(ignoreUnmatchFlagConstant)
	}
	return argumentList.Append(pathList(files)).Tokens()
}

// PullRequest builds arguments for hub pull-request. The base flag is emitted only for a non-empty base branch.
func PullRequest(message string, baseBranchName string, extraArguments []string) []string {
	argumentList := NewArgumentList(extraArguments)
	if len(baseBranchName) > 0 {
		argumentList.AppendFlagValue(baseBranchFlagConstant, Quote(baseBranchName))
	}
	return argumentList.AppendFlagValue(messageFlagConstant, Quote(message)).Tokens()
}

func pathList(files []string) string {
	return pathSeparatorTokenConstant + pathListSeparatorConstant + CombineQuoted(files)
}
