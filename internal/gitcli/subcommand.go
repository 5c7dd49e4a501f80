package gitcli

const (
	addLiteralConstant      = "add"
	branchLiteralConstant   = "branch"
	checkoutLiteralConstant = "checkout"
	commitLiteralConstant   = "commit"
	pushLiteralConstant     = "push"
	revParseLiteralConstant = "rev-parse"
	rmLiteralConstant       = "rm"
)

// Subcommand enumerates the git subcommands the client can launch.
type Subcommand int

// Supported git subcommands.
const (
	SubcommandAdd Subcommand = iota
	SubcommandBranch
	SubcommandCheckout
	SubcommandCommit
	SubcommandPush
	SubcommandRevParse
	SubcommandRm
)

// Literal returns the command-line token of the subcommand, or an empty string for unknown values.
func (subcommand Subcommand) Literal() string {
	switch subcommand {
	case SubcommandAdd:
		return addLiteralConstant
	case SubcommandBranch:
		return branchLiteralConstant
	case SubcommandCheckout:
		return checkoutLiteralConstant
	case SubcommandCommit:
		return commitLiteralConstant
	case SubcommandPush:
		return pushLiteralConstant
	case SubcommandRevParse:
		return revParseLiteralConstant
	case SubcommandRm:
		return rmLiteralConstant
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (subcommand Subcommand) String() string {
	return subcommand.Literal()
}
