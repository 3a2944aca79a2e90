package registry

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NativeTokenAddress is the sentinel address registry entries use for the
// chain's native currency, which has no contract of its own.
const NativeTokenAddress = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

// NativeDecimals is the precision of every supported chain's native currency.
const NativeDecimals int32 = 18

type Token struct {
	Symbol    string
	Name      string
	Address   common.Address
	Decimals  int32
	Color     string
	TextColor string
}

func (t Token) IsNative() bool {
	return t.Address == common.HexToAddress(NativeTokenAddress)
}

type Chain struct {
	ID           *big.Int
	Name         string
	DisplayName  string
	NativeSymbol string
	NativeName   string
	RPCURL       string
	ExplorerURL  string
}

var chains = []Chain{
	{
		ID:           big.NewInt(56),
		Name:         "BSC",
		DisplayName:  "BNB Smart Chain",
		NativeSymbol: "BNB",
		NativeName:   "BNB",
		RPCURL:       "https://bsc-dataseed.binance.org/",
		ExplorerURL:  "https://bscscan.com/",
	},
	{
		ID:           big.NewInt(714),
		Name:         "BNW",
		DisplayName:  "BNW Chain",
		NativeSymbol: "BNW",
		NativeName:   "BNW Token",
		RPCURL:       "http://174.138.18.77:8545",
		ExplorerURL:  "https://bnwscan.fiotech.org/",
	},
}

var tokensByChain = map[int64][]Token{
	56: {
		{Symbol: "BNB", Name: "BNB", Address: common.HexToAddress(NativeTokenAddress), Decimals: 18, Color: "#F3BA2F", TextColor: "black"},
		{Symbol: "BUSD", Name: "Binance USD", Address: common.HexToAddress("0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"), Decimals: 18, Color: "#F0B90B", TextColor: "black"},
		{Symbol: "BTCB", Name: "Bitcoin BEP2", Address: common.HexToAddress("0x7130d2A12B9BCbFAe4f2634d864A1Ee1Ce3Ead9c"), Decimals: 18, Color: "#F7931A", TextColor: "white"},
		{Symbol: "ETH", Name: "Ethereum Token", Address: common.HexToAddress("0x2170Ed0880ac9A755fd29B2688956BD959F933F8"), Decimals: 18, Color: "#627EEA", TextColor: "white"},
		{Symbol: "CAKE", Name: "PancakeSwap Token", Address: common.HexToAddress("0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82"), Decimals: 18, Color: "#D1884F", TextColor: "white"},
		{Symbol: "USDT", Name: "Tether USD", Address: common.HexToAddress("0x55d398326f99059fF775485246999027B3197955"), Decimals: 18, Color: "#26A17B", TextColor: "white"},
		{Symbol: "USDC", Name: "USD Coin", Address: common.HexToAddress("0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"), Decimals: 18, Color: "#2775CA", TextColor: "white"},
		{Symbol: "DOT", Name: "Polkadot Token", Address: common.HexToAddress("0x7083609fCE4d1d8Dc0C979AAb8c869Ea2C873402"), Decimals: 18, Color: "#E6007A", TextColor: "white"},
		{Symbol: "LINK", Name: "ChainLink Token", Address: common.HexToAddress("0xF8A0BF9cF54Bb92F17374d9e9A321E6a111a51bD"), Decimals: 18, Color: "#2A5ADA", TextColor: "white"},
		{Symbol: "ADA", Name: "Cardano Token", Address: common.HexToAddress("0x3EE2200Efb3400fAbB9AacF31297cBdD1d435D47"), Decimals: 18, Color: "#0033AD", TextColor: "white"},
	},
	714: {
		{Symbol: "BNW", Name: "BNW Token", Address: common.HexToAddress(NativeTokenAddress), Decimals: 18, Color: "#0066FF", TextColor: "white"},
		{Symbol: "WBNW", Name: "Wrapped BNW", Address: common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"), Decimals: 18, Color: "#0066FF", TextColor: "white"},
		{Symbol: "BNWUSD", Name: "BNW USD", Address: common.HexToAddress("0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"), Decimals: 18, Color: "#26A17B", TextColor: "white"},
	},
}

func Chains() []Chain {
	return chains
}

func ChainByID(id *big.Int) (Chain, bool) {
	for _, c := range chains {
		if c.ID.Cmp(id) == 0 {
			return c, true
		}
	}
	return Chain{}, false
}

func ChainByName(name string) (Chain, bool) {
	for _, c := range chains {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Chain{}, false
}

// Tokens returns the static token list for a chain. The list is small so
// lookups below are linear scans.
func Tokens(chainID *big.Int) []Token {
	return tokensByChain[chainID.Int64()]
}

func BySymbol(chainID *big.Int, symbol string) (Token, bool) {
	for _, t := range Tokens(chainID) {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}

func ByAddress(chainID *big.Int, address common.Address) (Token, bool) {
	for _, t := range Tokens(chainID) {
		if t.Address == address {
			return t, true
		}
	}
	return Token{}, false
}
