package langid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain(t *testing.T) {
	texts, labels := testCorpus()

	result, err := Train(texts, labels, TrainOptions{})
	require.NoError(t, err)

	t.Run("split accounts for every sample", func(t *testing.T) {
		assert.Equal(t, len(texts), result.TrainSize+result.TestSize)
		assert.Zero(t, result.Dropped)
		assert.True(t, result.Stratified)
	})

	t.Run("held out accuracy", func(t *testing.T) {
		require.NotNil(t, result.Eval)
		assert.Equal(t, result.TestSize, result.Eval.Total)
		assert.GreaterOrEqual(t, result.Eval.Accuracy, 0.8)
	})

	t.Run("model knows both languages", func(t *testing.T) {
		assert.Equal(t, []string{"English", "French"}, result.Model.Languages())
	})

	t.Run("components are compatible", func(t *testing.T) {
		assert.NoError(t, result.Model.Validate())
	})

	t.Run("vocabulary respects the cap", func(t *testing.T) {
		assert.LessOrEqual(t, result.Model.Vectorizer.NumFeatures(), DefaultMaxFeatures)
	})
}

func TestTrain_Deterministic(t *testing.T) {
	texts, labels := testCorpus()

	first, err := Train(texts, labels, TrainOptions{Seed: 7})
	require.NoError(t, err)
	second, err := Train(texts, labels, TrainOptions{Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, first.Eval.Accuracy, second.Eval.Accuracy)
	assert.Equal(t, first.Model.Vectorizer.Vocabulary, second.Model.Vectorizer.Vocabulary)
	assert.Equal(t, first.Model.Classifier.ClassLogPrior, second.Model.Classifier.ClassLogPrior)
}

func TestTrain_TfidfVectorizer(t *testing.T) {
	texts, labels := testCorpus()

	result, err := Train(texts, labels, TrainOptions{Kind: KindTfidf})
	require.NoError(t, err)

	assert.Equal(t, KindTfidf, result.Model.Vectorizer.Kind)
	assert.GreaterOrEqual(t, result.Eval.Accuracy, 0.8)
}

func TestTrain_UnknownVectorizerKind(t *testing.T) {
	texts, labels := testCorpus()

	_, err := Train(texts, labels, TrainOptions{Kind: VectorizerKind("hashing")})
	assert.ErrorContains(t, err, "hashing")
}

func TestTrain_FallsBackWithoutStratification(t *testing.T) {
	texts, labels := testCorpus()
	texts = append(texts, "guten morgen liebe freunde wie geht es euch heute")
	labels = append(labels, "German")

	result, err := Train(texts, labels, TrainOptions{})
	require.NoError(t, err)

	assert.False(t, result.Stratified)
	assert.Equal(t, len(texts), result.TrainSize+result.TestSize)
}

func TestTrain_DropsEmptyAfterNormalization(t *testing.T) {
	texts, labels := testCorpus()
	texts = append(texts, "12345", "!!! ???")
	labels = append(labels, "English", "French")

	result, err := Train(texts, labels, TrainOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Dropped)
	assert.Equal(t, len(texts)-2, result.TrainSize+result.TestSize)
}

func TestTrain_RetrainPicksUpNewLanguage(t *testing.T) {
	texts, labels := testCorpus()

	before, err := Train(texts, labels, TrainOptions{})
	require.NoError(t, err)
	assert.NotContains(t, before.Model.Languages(), "Spanish")

	spanish := []string{
		"el gato duerme en el jardin toda la tarde",
		"me gustaria una taza de cafe por favor",
		"los ninos juegan al futbol en el parque",
		"la biblioteca esta tranquila por la tarde",
		"buenos dias a todos bienvenidos a clase",
		"el tren sale de la estacion al mediodia",
		"hace muy buen tiempo esta manana",
		"vamos al mercado manana por la manana",
		"la panaderia huele a pan fresco",
		"una larga caminata me ayuda a pensar",
	}
	for _, s := range spanish {
		texts = append(texts, s)
		labels = append(labels, "Spanish")
	}

	after, err := Train(texts, labels, TrainOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"English", "French", "Spanish"}, after.Model.Languages())

	pred, err := after.Model.Predict("me gustaria una taza de cafe")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", pred.Language)
}

func TestTrain_InputValidation(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		_, err := Train(nil, nil, TrainOptions{})
		assert.Error(t, err)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := Train([]string{"one", "two"}, []string{"English"}, TrainOptions{})
		assert.Error(t, err)
	})

	t.Run("all samples dropped", func(t *testing.T) {
		_, err := Train([]string{"123", "456"}, []string{"English", "French"}, TrainOptions{})
		assert.Error(t, err)
	})
}
