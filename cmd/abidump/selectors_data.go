package main

// wellKnownSelectors maps common ERC-20/ERC-721 function signatures to their
// Keccak-256 selectors, precomputed rather than hashed at startup since
// they never change.
var wellKnownSelectors = map[string][4]byte{
	"transfer(address,uint256)":                 {0xa9, 0x05, 0x9c, 0xbb},
	"approve(address,uint256)":                  {0x09, 0x5e, 0xa7, 0xb3},
	"transferFrom(address,address,uint256)":     {0x23, 0xb8, 0x72, 0xdd},
	"balanceOf(address)":                        {0x70, 0xa0, 0x82, 0x31},
	"totalSupply()":                             {0x18, 0x16, 0x0d, 0xdd},
	"allowance(address,address)":                {0xdd, 0x62, 0xed, 0x3e},
	"name()":                                    {0x06, 0xfd, 0xde, 0x03},
	"symbol()":                                  {0x95, 0xd8, 0x9b, 0x41},
	"decimals()":                                {0x31, 0x3c, 0xe5, 0x67},
	"ownerOf(uint256)":                          {0x63, 0x52, 0x21, 0x1e},
	"safeTransferFrom(address,address,uint256)": {0x42, 0x84, 0x2e, 0x0e},
}
