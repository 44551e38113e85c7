/**
 * 目录:内置扫描模块定义
 * @author: sun977
 * @date: 2025.09.16
 * @description: 全部内置扫描模块的静态定义，按分类组织，构建时由目录统一校验
 * @func: builtinModules 和 coreModuleKeys
 */
package catalog

import "neoconsole/internal/model"

// coreModuleKeys 默认启用的核心模块
var coreModuleKeys = []string{
	"network_scan",
	"web_application_scan",
	"vulnerability_check",
}

// builtinModules 返回内置模块定义集
// 顺序即目录顺序，分类列表按此处首次出现顺序生成
func builtinModules() []model.ScanModuleDefinition {
	return []model.ScanModuleDefinition{
		// ==================== Network ====================
		{
			Key:         "network_scan",
			Name:        "Network Scan",
			Description: "Full TCP/UDP port scan with service detection against the target host",
			Category:    "Network",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "scan_type",
					Label:       "Scan Type",
					Type:        model.FieldTypeEnum,
					Description: "Port scan technique",
					Optional:    true,
					Default:     "SYN",
					Options:     []string{"SYN", "TCP Connect", "UDP"},
				},
				{
					FieldName:   "port_range",
					Label:       "Port Range",
					Type:        model.FieldTypeString,
					Description: "Ports to scan, nmap syntax",
					Optional:    true,
					Default:     "1-65535",
					Placeholder: "e.g. 1-1024,3306,6379",
				},
				{
					FieldName:   "timing_template",
					Label:       "Timing Template",
					Type:        model.FieldTypeEnum,
					Description: "Scan speed versus stealth trade-off",
					Optional:    true,
					Default:     "T3",
					Options:     []string{"T1", "T2", "T3", "T4", "T5"},
				},
				{
					FieldName:   "enable_script_scanning",
					Label:       "Enable Script Scanning",
					Type:        model.FieldTypeBoolean,
					Description: "Run NSE scripts against discovered services",
					Optional:    true,
					Default:     false,
				},
				{
					FieldName:   "script_categories",
					Label:       "Script Categories",
					Type:        model.FieldTypeArrayEnum,
					Description: "NSE script categories to execute",
					Optional:    true,
					Options:     []string{"default", "safe", "vuln", "discovery", "auth", "brute"},
					Condition:   &model.FieldCondition{Field: "enable_script_scanning", Value: true},
				},
			},
		},
		{
			Key:         "host_discovery",
			Name:        "Host Discovery",
			Description: "ICMP/ARP/TCP ping sweep to enumerate live hosts in the target scope",
			Category:    "Network",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "probe_method",
					Label:     "Probe Method",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Default:   "ICMP",
					Options:   []string{"ICMP", "ARP", "TCP SYN", "TCP ACK"},
				},
				{
					FieldName:   "exclude_hosts",
					Label:       "Exclude Hosts",
					Type:        model.FieldTypeArrayString,
					Description: "Hosts to skip during discovery",
					Optional:    true,
					Placeholder: "10.0.0.1, 10.0.0.254",
				},
			},
		},
		{
			Key:         "service_fingerprint",
			Name:        "Service Fingerprint",
			Description: "Banner grabbing and protocol probing to identify service versions",
			Category:    "Network",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "probe_intensity",
					Label:       "Probe Intensity",
					Type:        model.FieldTypeNumber,
					Description: "Version detection intensity 0-9",
					Optional:    true,
					Default:     7,
				},
			},
		},
		{
			Key:         "masscan_sweep",
			Name:        "Masscan Sweep",
			Description: "High-rate asynchronous port sweep for large network segments",
			Category:    "Network",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "packets_per_second",
					Label:       "Packets Per Second",
					Type:        model.FieldTypeNumber,
					Description: "Transmit rate cap",
					Optional:    true,
					Default:     1000,
				},
				{
					FieldName: "top_ports",
					Label:     "Top Ports",
					Type:      model.FieldTypeNumber,
					Optional:  true,
					Default:   100,
				},
			},
		},
		{
			Key:         "firewall_detection",
			Name:        "Firewall Detection",
			Description: "Detect packet filtering and WAF presence between scanner and target",
			Category:    "Network",
			Parameters:  nil,
		},
		{
			Key:         "snmp_enumeration",
			Name:        "SNMP Enumeration",
			Description: "Enumerate SNMP-exposed system information with common community strings",
			Category:    "Network",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "community_strings",
					Label:       "Community Strings",
					Type:        model.FieldTypeArrayString,
					Description: "Community strings to try",
					Optional:    true,
					Default:     "public, private",
				},
			},
		},

		// ==================== Web ====================
		{
			Key:         "web_application_scan",
			Name:        "Web Application Scan",
			Description: "Crawl and actively test the web application for common vulnerability classes",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "crawl_depth",
					Label:       "Crawl Depth",
					Type:        model.FieldTypeNumber,
					Description: "Maximum link depth from the entry URL",
					Optional:    true,
					Default:     3,
				},
				{
					FieldName:   "user_agent",
					Label:       "User Agent",
					Type:        model.FieldTypeString,
					Optional:    true,
					Placeholder: "Mozilla/5.0 ...",
				},
				{
					FieldName:   "auth_cookies",
					Label:       "Auth Cookies",
					Type:        model.FieldTypeString,
					Description: "Session cookies for authenticated scanning",
					Optional:    true,
					InputType:   "password",
				},
				{
					FieldName:   "exclude_paths",
					Label:       "Exclude Paths",
					Type:        model.FieldTypeArrayString,
					Description: "URL path prefixes to skip",
					Optional:    true,
					Placeholder: "/logout, /admin/delete",
				},
			},
		},
		{
			Key:         "api_scan",
			Name:        "API Scan",
			Description: "Schema-driven testing of REST APIs including parameter fuzzing",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "openapi_spec_url",
					Label:       "OpenAPI Spec URL",
					Type:        model.FieldTypeString,
					Description: "URL of the OpenAPI/Swagger document",
					Optional:    false,
					Placeholder: "https://target/api/openapi.json",
				},
				{
					FieldName:   "auth_header",
					Label:       "Auth Header",
					Type:        model.FieldTypeString,
					Description: "Authorization header value sent with every request",
					Optional:    true,
					InputType:   "password",
				},
				{
					FieldName: "fuzz_parameters",
					Label:     "Fuzz Parameters",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
				{
					FieldName:   "fuzz_payload_sets",
					Label:       "Fuzz Payload Sets",
					Type:        model.FieldTypeArrayEnum,
					Description: "Payload families used when fuzzing is enabled",
					Optional:    true,
					Options:     []string{"sqli", "xss", "path_traversal", "command_injection", "ssti"},
					Condition:   &model.FieldCondition{Field: "fuzz_parameters", Value: true},
				},
			},
		},
		{
			Key:         "web_crawler",
			Name:        "Web Crawler",
			Description: "Passive crawl building the site map without active testing",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "max_pages",
					Label:     "Max Pages",
					Type:      model.FieldTypeNumber,
					Optional:  true,
					Default:   500,
				},
				{
					FieldName: "follow_subdomains",
					Label:     "Follow Subdomains",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
			},
		},
		{
			Key:         "directory_bruteforce",
			Name:        "Directory Bruteforce",
			Description: "Dictionary-based discovery of hidden paths and files",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "wordlist",
					Label:     "Wordlist",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Default:   "common",
					Options:   []string{"common", "medium", "large", "api_routes"},
				},
				{
					FieldName:   "extensions",
					Label:       "Extensions",
					Type:        model.FieldTypeArrayString,
					Description: "File extensions appended to each word",
					Optional:    true,
					Placeholder: "php, jsp, bak",
				},
			},
		},
		{
			Key:         "sql_injection_test",
			Name:        "SQL Injection Test",
			Description: "Error-based, boolean-based and time-based SQL injection detection",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "injection_level",
					Label:       "Injection Level",
					Type:        model.FieldTypeNumber,
					Description: "Test depth 1-5, higher tests more injection points",
					Optional:    true,
					Default:     1,
				},
				{
					FieldName: "dbms_hint",
					Label:     "DBMS Hint",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Options:   []string{"MySQL", "PostgreSQL", "MSSQL", "Oracle", "SQLite"},
				},
			},
		},
		{
			Key:         "xss_detection",
			Name:        "XSS Detection",
			Description: "Reflected, stored and DOM-based cross-site scripting detection",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "include_dom_xss",
					Label:     "Include DOM XSS",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   true,
				},
			},
		},
		{
			Key:         "tls_configuration_audit",
			Name:        "TLS Configuration Audit",
			Description: "Audit TLS protocol versions, cipher suites and certificate chain",
			Category:    "Web",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "check_heartbleed",
					Label:       "Check Heartbleed",
					Type:        model.FieldTypeBoolean,
					Optional:    true,
					Default:     true,
				},
			},
		},

		// ==================== Vulnerability ====================
		{
			Key:         "vulnerability_check",
			Name:        "Vulnerability Check",
			Description: "Match discovered services against the known-vulnerability knowledge base",
			Category:    "Vulnerability",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "severity_threshold",
					Label:       "Severity Threshold",
					Type:        model.FieldTypeEnum,
					Description: "Minimum severity reported",
					Optional:    true,
					Default:     "low",
					Options:     []string{"info", "low", "medium", "high", "critical"},
				},
				{
					FieldName:   "custom_poc_definitions",
					Label:       "Custom PoC Definitions",
					Type:        model.FieldTypeJSONArray,
					Description: "Additional PoC entries merged into the knowledge base for this scan",
					Optional:    true,
				},
			},
		},
		{
			Key:         "poc_verification",
			Name:        "PoC Verification",
			Description: "Safely execute proof-of-concept payloads to confirm candidate vulnerabilities",
			Category:    "Vulnerability",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "verification_mode",
					Label:       "Verification Mode",
					Type:        model.FieldTypeEnum,
					Description: "Safe mode only observes, exploit mode may change target state",
					Optional:    true,
					Default:     "safe",
					Options:     []string{"safe", "exploit"},
				},
				{
					FieldName:   "exploit_confirmation",
					Label:       "Exploit Confirmation",
					Type:        model.FieldTypeString,
					Description: "Type CONFIRM to acknowledge exploit mode side effects",
					Optional:    false,
					Condition:   &model.FieldCondition{Field: "verification_mode", Value: "exploit"},
				},
			},
		},
		{
			Key:         "cve_correlation",
			Name:        "CVE Correlation",
			Description: "Correlate fingerprinted versions against CVE feeds",
			Category:    "Vulnerability",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "feeds",
					Label:     "Feeds",
					Type:      model.FieldTypeArrayEnum,
					Optional:  true,
					Default:   "nvd",
					Options:   []string{"nvd", "cnnvd", "github_advisories", "vendor_bulletins"},
				},
			},
		},

		// ==================== Credentials ====================
		{
			Key:         "weak_password_audit",
			Name:        "Weak Password Audit",
			Description: "Audit exposed authentication services for weak and default passwords",
			Category:    "Credentials",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "services",
					Label:     "Services",
					Type:      model.FieldTypeArrayEnum,
					Optional:  true,
					Default:   "ssh, mysql, redis",
					Options:   []string{"ssh", "ftp", "telnet", "mysql", "mssql", "redis", "postgresql", "smb", "rdp"},
				},
				{
					FieldName:   "max_attempts_per_service",
					Label:       "Max Attempts Per Service",
					Type:        model.FieldTypeNumber,
					Description: "Attempt cap to avoid account lockout",
					Optional:    true,
					Default:     50,
				},
			},
		},
		{
			Key:         "credential_bruteforce",
			Name:        "Credential Bruteforce",
			Description: "Dictionary attack against a single selected authentication service",
			Category:    "Credentials",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "target_service",
					Label:     "Target Service",
					Type:      model.FieldTypeEnum,
					Optional:  false,
					Options:   []string{"ssh", "ftp", "mysql", "rdp", "smb", "http_basic"},
				},
				{
					FieldName: "use_custom_wordlist",
					Label:     "Use Custom Wordlist",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
				{
					FieldName:   "custom_wordlist_url",
					Label:       "Custom Wordlist URL",
					Type:        model.FieldTypeString,
					Description: "URL of the wordlist fetched by the engine",
					Optional:    false,
					Condition:   &model.FieldCondition{Field: "use_custom_wordlist", Value: true},
				},
			},
		},
		{
			Key:         "default_credential_check",
			Name:        "Default Credential Check",
			Description: "Try vendor default credentials against identified products",
			Category:    "Credentials",
			Parameters:  nil,
		},

		// ==================== OSINT ====================
		{
			Key:         "subdomain_enumeration",
			Name:        "Subdomain Enumeration",
			Description: "Enumerate subdomains via passive sources and active dictionary resolution",
			Category:    "OSINT",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "techniques",
					Label:     "Techniques",
					Type:      model.FieldTypeArrayEnum,
					Optional:  true,
					Default:   "passive_dns, certificate_logs",
					Options:   []string{"passive_dns", "certificate_logs", "search_engines", "bruteforce", "zone_transfer"},
				},
				{
					FieldName: "wordlist_size",
					Label:     "Wordlist Size",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Default:   "medium",
					Options:   []string{"small", "medium", "large"},
				},
			},
		},
		{
			Key:         "dns_reconnaissance",
			Name:        "DNS Reconnaissance",
			Description: "Collect DNS records, attempt zone transfer, map mail and name servers",
			Category:    "OSINT",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "record_types",
					Label:       "Record Types",
					Type:        model.FieldTypeArrayEnum,
					Optional:    true,
					Default:     "A, AAAA, MX, NS, TXT",
					Options:     []string{"A", "AAAA", "MX", "NS", "TXT", "SOA", "SRV", "CNAME"},
				},
			},
		},
		{
			Key:         "whois_lookup",
			Name:        "WHOIS Lookup",
			Description: "Registration data for the target domain and its IP allocations",
			Category:    "OSINT",
			Parameters:  nil,
		},
		{
			Key:         "email_harvesting",
			Name:        "Email Harvesting",
			Description: "Collect organization email addresses from public sources",
			Category:    "OSINT",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "max_results",
					Label:     "Max Results",
					Type:      model.FieldTypeNumber,
					Optional:  true,
					Default:   200,
				},
			},
		},
		{
			Key:         "certificate_transparency",
			Name:        "Certificate Transparency",
			Description: "Query CT logs for certificates issued to the target domain",
			Category:    "OSINT",
			Parameters:  nil,
		},
		{
			Key:         "search_engine_dorking",
			Name:        "Search Engine Dorking",
			Description: "Run curated search queries exposing sensitive indexed content",
			Category:    "OSINT",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "dork_categories",
					Label:       "Dork Categories",
					Type:        model.FieldTypeArrayEnum,
					Optional:    true,
					Default:     "exposed_files, login_pages",
					Options:     []string{"exposed_files", "login_pages", "error_messages", "backup_files", "config_files"},
				},
			},
		},

		// ==================== Identity ====================
		{
			Key:         "active_directory_enumeration",
			Name:        "Active Directory Enumeration",
			Description: "Enumerate domain users, groups, computers and trust relationships",
			Category:    "Identity",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "domain_controller",
					Label:       "Domain Controller",
					Type:        model.FieldTypeString,
					Description: "DC host, defaults to auto-discovery via DNS",
					Optional:    true,
					Placeholder: "dc01.corp.local",
				},
				{
					FieldName: "ldap_port",
					Label:     "LDAP Port",
					Type:      model.FieldTypeNumber,
					Optional:  true,
					Default:   389,
				},
				{
					FieldName: "use_kerberos",
					Label:     "Use Kerberos",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
				{
					FieldName:   "kerberos_realm",
					Label:       "Kerberos Realm",
					Type:        model.FieldTypeString,
					Description: "Realm used for Kerberos binds",
					Optional:    false,
					Placeholder: "CORP.LOCAL",
					Condition:   &model.FieldCondition{Field: "use_kerberos", Value: true},
				},
			},
		},
		{
			Key:         "kerberos_attack_surface",
			Name:        "Kerberos Attack Surface",
			Description: "Identify kerberoastable and AS-REP roastable accounts",
			Category:    "Identity",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "checks",
					Label:     "Checks",
					Type:      model.FieldTypeArrayEnum,
					Optional:  true,
					Default:   "kerberoasting, asrep_roasting",
					Options:   []string{"kerberoasting", "asrep_roasting", "delegation_abuse", "ticket_lifetime"},
				},
			},
		},
		{
			Key:         "smb_share_audit",
			Name:        "SMB Share Audit",
			Description: "Enumerate SMB shares and flag anonymous or world-readable access",
			Category:    "Identity",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "list_share_contents",
					Label:     "List Share Contents",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
			},
		},
		{
			Key:         "ldap_injection_test",
			Name:        "LDAP Injection Test",
			Description: "Test directory-backed login and search forms for LDAP injection",
			Category:    "Identity",
			Parameters:  nil,
		},

		// ==================== Code ====================
		{
			Key:         "sast_scan",
			Name:        "SAST Scan",
			Description: "Static analysis of repository source code for vulnerability patterns",
			Category:    "Code",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "languages",
					Label:       "Languages",
					Type:        model.FieldTypeArrayEnum,
					Description: "Languages to analyze, empty means auto-detect",
					Optional:    true,
					Options:     []string{"go", "java", "python", "javascript", "php", "c_cpp"},
				},
				{
					FieldName: "ruleset",
					Label:     "Ruleset",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Default:   "balanced",
					Options:   []string{"strict", "balanced", "permissive"},
				},
				{
					FieldName: "include_test_code",
					Label:     "Include Test Code",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
			},
		},
		{
			Key:         "dependency_audit",
			Name:        "Dependency Audit",
			Description: "Check declared dependencies against vulnerability advisories",
			Category:    "Code",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "include_dev_dependencies",
					Label:     "Include Dev Dependencies",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   false,
				},
			},
		},
		{
			Key:         "secret_detection",
			Name:        "Secret Detection",
			Description: "Scan repository history for committed credentials and API keys",
			Category:    "Code",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "scan_history_depth",
					Label:       "Scan History Depth",
					Type:        model.FieldTypeNumber,
					Description: "Number of commits scanned backwards from HEAD, 0 means full history",
					Optional:    true,
					Default:     0,
				},
				{
					FieldName:   "custom_patterns",
					Label:       "Custom Patterns",
					Type:        model.FieldTypeJSONObject,
					Description: "Extra named regex patterns, e.g. {\"internal_token\": \"tok_[a-z0-9]{32}\"}",
					Optional:    true,
				},
			},
		},

		// ==================== Cloud ====================
		{
			Key:         "cloud_configuration_audit",
			Name:        "Cloud Configuration Audit",
			Description: "Review cloud account resources against security baselines",
			Category:    "Cloud",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "providers",
					Label:     "Providers",
					Type:      model.FieldTypeArrayEnum,
					Optional:  true,
					Default:   "aws",
					Options:   []string{"aws", "azure", "gcp", "aliyun", "tencent_cloud"},
				},
				{
					FieldName:   "regions",
					Label:       "Regions",
					Type:        model.FieldTypeArrayString,
					Description: "Regions to audit, empty means all enabled regions",
					Optional:    true,
					Placeholder: "us-east-1, eu-west-1",
				},
				{
					FieldName: "compliance_profile",
					Label:     "Compliance Profile",
					Type:      model.FieldTypeEnum,
					Optional:  true,
					Default:   "cis",
					Options:   []string{"cis", "nist", "pci_dss", "iso27001"},
				},
			},
		},
		{
			Key:         "iam_policy_review",
			Name:        "IAM Policy Review",
			Description: "Detect over-privileged identities and risky policy combinations",
			Category:    "Cloud",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName: "flag_wildcard_actions",
					Label:     "Flag Wildcard Actions",
					Type:      model.FieldTypeBoolean,
					Optional:  true,
					Default:   true,
				},
			},
		},
		{
			Key:         "storage_exposure_check",
			Name:        "Storage Exposure Check",
			Description: "Find publicly accessible object storage buckets and snapshots",
			Category:    "Cloud",
			Parameters:  nil,
		},
		{
			Key:         "container_image_scan",
			Name:        "Container Image Scan",
			Description: "Scan container images in the account registry for vulnerable layers",
			Category:    "Cloud",
			Parameters: []model.ScanModuleConfigField{
				{
					FieldName:   "registry_filter",
					Label:       "Registry Filter",
					Type:        model.FieldTypeString,
					Description: "Only scan repositories matching this prefix",
					Optional:    true,
					Placeholder: "prod/",
				},
			},
		},
	}
}
