package platform

import (
	"context"

	"github.com/aretw0/bower/pkg/adapters/fs"
	"github.com/aretw0/bower/pkg/core"
)

// Init builds and initializes the Store for the given snapshot file path
// without loading it. Most callers want New instead.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, nil
	}

	mustExist, _ := o.config["must_exist"].(bool)
	forceTemp, _ := o.config["force_temp"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	useTemp := forceTemp || (IsDevRun() && devSafety)
	resolved := ResolveStorePath(path, useTemp)

	store := fs.NewStore(fs.Config{
		Path:      resolved,
		MustExist: mustExist,
		Logger:    o.logger,
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// New opens the notebook persisted at path, creating a fresh root-only
// notebook when the store file does not exist yet.
//
//	nb, err := platform.New("./notes/bower.json", platform.WithLogger(logger))
func New(path string, opts ...Option) (*core.Notebook, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	strictLoad, _ := o.config["strict_load"].(bool)
	rootName, _ := o.config["root_name"].(string)

	nb := core.NewNotebook(core.Config{
		Store:      store,
		Logger:     o.logger,
		RootName:   rootName,
		StrictLoad: strictLoad,
	})
	if err := nb.Load(context.Background()); err != nil {
		return nil, err
	}
	return nb, nil
}
