// Package classify defines the collaborator contract between extracted
// feature matrices and a downstream classifier.
//
// The feature engine makes no assumption about the classifier beyond
// this interface pair: it accepts a dense numeric matrix and integer
// class labels. Linear models (ridge, logistic) are the intended match
// for random convolutional features, but any implementation satisfying
// [Classifier] works. No implementation ships with this module.
package classify

import "github.com/cwbudde/algo-rocket/transform"

// Classifier is the minimal fit/predict capability pair a downstream
// model must expose to consume extracted features.
type Classifier interface {
	// Fit trains on one feature row per example, with labels[i] the class
	// of features.Row(i).
	Fit(features *transform.Features, labels []int) error

	// Predict returns one class label per feature row.
	Predict(features *transform.Features) ([]int, error)
}
