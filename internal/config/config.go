package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	chainIDEnvKey       = "CHAIN_ID"
	routerAddrEnvKey    = "ROUTER_ADDRESS"
	wrappedAddrEnvKey   = "WRAPPED_NATIVE_ADDRESS"
	keystorePathEnvKey  = "KEYSTORE_PATH"
	keystorePassEnvKey  = "KEYSTORE_PASSPHRASE"
	jwtSecretEnvKey     = "JWT_SECRET"
	storageDriverEnvKey = "STORAGE_DRIVER"
	dbConnEnvKey        = "DB_CONNECTION_URL"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type App struct {
	Port               string
	NodeURL            string
	ChainID            *big.Int
	RouterAddress      string
	WrappedNativeAddr  string
	KeystorePath       string
	KeystorePassphrase string
	JWTSecret          string
	StorageDriver      string
	DBConnectionURL    string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	chainIDStr, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}
	chainID, ok := new(big.Int).SetString(chainIDStr, 10)
	if !ok {
		return App{}, fmt.Errorf("%s is not a decimal chain id: %q", chainIDEnvKey, chainIDStr)
	}

	routerAddr, ok := os.LookupEnv(routerAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, routerAddrEnvKey)
	}

	wrappedAddr, ok := os.LookupEnv(wrappedAddrEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, wrappedAddrEnvKey)
	}

	keystorePath, ok := os.LookupEnv(keystorePathEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, keystorePathEnvKey)
	}

	// an empty passphrase is a valid keystore passphrase
	keystorePass := os.Getenv(keystorePassEnvKey)

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	storageDriver, ok := os.LookupEnv(storageDriverEnvKey)
	if !ok {
		storageDriver = StorageDriverMemory
	}
	if storageDriver != StorageDriverMemory && storageDriver != StorageDriverPostgres {
		return App{}, fmt.Errorf("unsupported storage driver: %q", storageDriver)
	}

	dbConn := os.Getenv(dbConnEnvKey)
	if storageDriver == StorageDriverPostgres && dbConn == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	return App{
		Port:               port,
		NodeURL:            nodeURL,
		ChainID:            chainID,
		RouterAddress:      routerAddr,
		WrappedNativeAddr:  wrappedAddr,
		KeystorePath:       keystorePath,
		KeystorePassphrase: keystorePass,
		JWTSecret:          jwtSecret,
		StorageDriver:      storageDriver,
		DBConnectionURL:    dbConn,
	}, nil
}
