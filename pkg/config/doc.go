/*
Package config manages configuration parsing and validation for swiftfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	| Parser    | | Parser  | | Parser    |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates configuration values
- Provides type-safe config access
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file (or falls back to defaults)
2. Parses format-specific syntax
3. Validates configuration values
4. Provides validated config to other packages

⚡ Key Responsibilities:
- Configuration parsing
- Schema validation
- Default value management
- Type safety
- Format abstraction

🤝 Interfaces:
- Parser: Format-specific parsing
- Config: Type-safe config access

📝 Design Philosophy:
The config package is the source of truth for all configuration. It:
- Provides a clean interface for config access
- Ensures type safety and validation
- Abstracts away format-specific details
- Makes a missing config file a non-event: the tool is useful with
  zero configuration, so defaults always stand in

🔍 Example:

	cfg, err := config.Load(ctx, config.DefaultConfigFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	fmt.Println(cfg.Target)
*/
package config
