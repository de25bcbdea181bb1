//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package confirm

type IConfirm interface {
	// Confirm asks a yes/no question. An empty answer means yes.
	Confirm(question string) (bool, error)
}
