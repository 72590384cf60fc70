/*
Package config holds the settings of a randselect run and loads them from
optional config files.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Defines Config, the immutable input of a run
- Parses .randselect.{yaml,yml,json,hcl} into a File of optional overrides
- Validates the final Config before anything touches the filesystem

🔄 Precedence (highest first), resolved by the command line layer:
1. Flags
2. RANDSELECT_* environment variables
3. Config file
4. Default()

⚠️ A config file can never set Commit. Writing to the filesystem always needs
--go on the command line.

🔍 Example:

	cfg, err := config.LoadFile(ctx, ".randselect.yaml")
	if err != nil {
		return err
	}
	cfg.Commit = true
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
