package app

import (
	"fmt"

	transformHTTP "github.com/allisson/hashcipher/internal/transform/http"
	transformService "github.com/allisson/hashcipher/internal/transform/service"
	transformUseCase "github.com/allisson/hashcipher/internal/transform/usecase"
)

// DigestProvider returns the digest registry used by the hash path.
func (c *Container) DigestProvider() transformService.DigestProvider {
	c.digestProviderInit.Do(func() {
		c.digestProvider = transformService.NewDigestRegistry()
	})
	return c.digestProvider
}

// CipherManager returns the cipher factory used by the cipher path.
func (c *Container) CipherManager() transformService.CipherManager {
	c.cipherManagerInit.Do(func() {
		c.cipherManager = transformService.NewCipherManager()
	})
	return c.cipherManager
}

// HashService returns the hash path service.
func (c *Container) HashService() transformService.HashService {
	c.hashServiceInit.Do(func() {
		c.hashService = transformService.NewHashService(c.DigestProvider())
	})
	return c.hashService
}

// CipherService returns the cipher path service.
func (c *Container) CipherService() transformService.CipherService {
	c.cipherServiceInit.Do(func() {
		c.cipherService = transformService.NewCipherService(c.CipherManager())
	})
	return c.cipherService
}

// Encoder returns the output encoder.
func (c *Container) Encoder() transformService.Encoder {
	c.encoderInit.Do(func() {
		c.encoder = transformService.NewEncoder()
	})
	return c.encoder
}

// TransformUseCase returns the transform use case instance.
func (c *Container) TransformUseCase() (transformUseCase.TransformUseCase, error) {
	var err error
	c.transformUseCaseInit.Do(func() {
		c.transformUseCase, err = c.initTransformUseCase()
		if err != nil {
			c.initErrors["transformUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transformUseCase"]; exists {
		return nil, storedErr
	}
	return c.transformUseCase, nil
}

// TransformHandler returns the transform HTTP handler instance.
func (c *Container) TransformHandler() (*transformHTTP.TransformHandler, error) {
	var err error
	c.transformHandlerInit.Do(func() {
		c.transformHandler, err = c.initTransformHandler()
		if err != nil {
			c.initErrors["transformHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transformHandler"]; exists {
		return nil, storedErr
	}
	return c.transformHandler, nil
}

// initTransformUseCase creates the transform use case with all its dependencies.
func (c *Container) initTransformUseCase() (transformUseCase.TransformUseCase, error) {
	baseUseCase := transformUseCase.NewTransformUseCase(
		c.HashService(),
		c.CipherService(),
		c.Encoder(),
		c.config.DefaultOutputFormat,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for transform use case: %w", err)
		}
		return transformUseCase.NewTransformUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTransformHandler creates the transform HTTP handler with all its dependencies.
func (c *Container) initTransformHandler() (*transformHTTP.TransformHandler, error) {
	useCase, err := c.TransformUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transform use case for transform handler: %w", err)
	}

	return transformHTTP.NewTransformHandler(useCase, c.config.MaxInputBytes, c.Logger()), nil
}
