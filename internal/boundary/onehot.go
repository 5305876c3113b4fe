// Package boundary turns flat segmentation labels into the binary edge
// targets used by the shape stream of a boundary-aware segmentation model.
package boundary

import (
	"fmt"

	"github.com/born-ml/gscnn/internal/tensor"
	"github.com/born-ml/gscnn/internal/validate"
)

// LabelToOneHot converts an (h, w) label grid into an (h, w, nClasses)
// stack of 0/1 masks. Slice i is label == i, except the background slice,
// which is all zero whatever the label contains.
func LabelToOneHot[T tensor.Label](label *tensor.Tensor[T], nClasses, backgroundClass int) (*tensor.Tensor[uint8], error) {
	if label == nil || len(label.Shape()) != 2 {
		return nil, &validate.ValidationError{
			Kind:    validate.KindPreconditionViolation,
			Role:    validate.RoleLabel,
			Details: "label must be of shape (h, w)",
		}
	}
	if nClasses <= 0 {
		return nil, &validate.ValidationError{
			Kind:    validate.KindPreconditionViolation,
			Role:    validate.RoleLabel,
			Details: fmt.Sprintf("n_classes must be > 0, got %d", nClasses),
		}
	}

	masks := make([]*tensor.Tensor[uint8], nClasses)
	for i := range masks {
		if i == backgroundClass {
			masks[i] = tensor.Zeros[uint8](label.Shape())
			continue
		}
		// Classes past the range of T cannot occur in the label.
		if int64(T(i)) != int64(i) {
			masks[i] = tensor.Zeros[uint8](label.Shape())
			continue
		}
		masks[i] = tensor.BoolToUint8(tensor.EqualScalar(label, T(i)))
	}
	return tensor.Stack(masks), nil
}
